package gridfont

// ellipsis is the marker appended to truncated text.
const ellipsis = "..."

// Truncate policies select which part of a string is elided when it
// exceeds its width budget.
type Truncate uint8

const (
	TruncateNone   Truncate = iota // never truncate
	TruncateFront                  // "...ing of the string"
	TruncateMiddle                 // "beginn...string"
	TruncateBack                   // "beginning of t..."
)

func (self Truncate) String() string {
	switch self {
	case TruncateNone: return "TruncateNone"
	case TruncateFront: return "TruncateFront"
	case TruncateMiddle: return "TruncateMiddle"
	case TruncateBack: return "TruncateBack"
	default:
		return "TruncateInvalid"
	}
}

// Align selects horizontal alignment within a layout width.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// A Layout describes how a string should be fitted when drawn or
// measured: a width budget in pixels (negative means unconstrained),
// a horizontal alignment and a truncation policy.
type Layout struct {
	Width    int
	Align    Align
	Truncate Truncate
}

// A DisplayText pairs a string with its layout. DisplayTexts are
// transient values, built per draw or measure call.
type DisplayText struct {
	Text   string
	Layout Layout
}

// Truncate fits the text into the given width budget under the given
// policy, returning the resulting string and its measured width. If
// the policy is [TruncateNone] or the text already fits, the text is
// returned unchanged with its raw width.
//
// With a budget too small for even the ellipsis marker, the result
// degenerates to the bare marker (still possibly over budget) and a
// width of 0. That's a legitimate output, not an error.
func (self *Font) Truncate(text string, widthBudget int, policy Truncate) (string, int) {
	if policy == TruncateNone || widthBudget < 0 {
		return text, self.widthRaw(text, 0)
	}
	return self.truncateSearch(text, widthBudget, policy)
}

// truncateText applies a display text's layout. The returned width is
// -1 when the layout leaves the text unconstrained (callers measure
// on demand in that case, see [Font.FormattedWidth]).
func (self *Font) truncateText(text DisplayText) (string, int) {
	layout := text.Layout
	if layout.Width < 0 || (layout.Align == AlignLeft && layout.Truncate == TruncateNone) {
		return text.Text, -1
	}
	if layout.Truncate == TruncateNone {
		return text.Text, self.widthRaw(text.Text, 0)
	}
	return self.truncateSearch(text.Text, layout.Width, layout.Truncate)
}

// truncateSearch binary searches the largest code point count whose
// truncated form still fits the budget. Adding code points never
// removes ink, so trial widths are monotonic in the count and the
// bracket collapse is safe. Exact fits resolve toward the larger
// count.
func (self *Font) truncateSearch(text string, widthBudget int, policy Truncate) (string, int) {
	firstWidth := self.widthRaw(text, 0)
	if firstWidth <= widthBudget {
		return text, firstWidth
	}
	// every candidate carries at least the ellipsis marker, so an
	// impossible budget short-circuits to the k = 0 degenerate
	if widthBudget < self.widthEllipsis {
		return truncatedString(text, 0, policy), 0
	}

	workingChars := 0
	workingWidth := 0

	low, high := 0, countCodePoints(text)
	for low <= high {
		// think "how many chars to keep, omitting the rest"
		nextChars := (low + high) / 2
		nextWidth := self.widthRaw(truncatedString(text, nextChars, policy), 0)
		if nextWidth <= widthBudget {
			if nextChars > workingChars {
				workingChars = nextChars
				workingWidth = nextWidth
			}
			if nextChars == low {
				low = nextChars + 1
			} else {
				low = nextChars
			}
		} else {
			high = nextChars - 1
		}
	}
	return truncatedString(text, workingChars, policy), workingWidth
}

// truncatedString builds the truncation candidate keeping the given
// number of code points under the given policy.
func truncatedString(text string, keepChars int, policy Truncate) string {
	switch policy {
	case TruncateFront:
		return ellipsis + lastCodePoints(text, keepChars)
	case TruncateMiddle:
		return firstCodePoints(text, (keepChars+1)/2) + ellipsis + lastCodePoints(text, keepChars/2)
	default: // TruncateBack
		return firstCodePoints(text, keepChars) + ellipsis
	}
}
