package gridfont

import "sync"

import "golang.org/x/text/language"

// A FontSet keeps fonts organized by pixel size and language, with
// sensible fallbacks when the exact combination isn't available.
// It replaces any ambient global font registry: build one at startup
// and hand it to whatever needs glyph measurement.
//
// Registration is a replace-and-publish operation: a font is fully
// built before it's stored, and the map is guarded so that readers
// never observe a partially registered font. Lookups take a read
// lock only.
type FontSet struct {
	mutex sync.RWMutex
	fonts map[fontKey]*Font
	lang  language.Tag
}

type fontKey struct {
	size int
	lang language.Tag
}

// NewFontSet creates an empty font set with [language.English] as the
// active language.
func NewFontSet() *FontSet {
	return &FontSet{
		fonts: make(map[fontKey]*Font),
		lang:  language.English,
	}
}

// SetLanguage switches the language that [FontSet.Get] prefers.
// Typically followed by AddTTF calls registering fonts for the new
// language; fonts registered earlier stay available as fallbacks.
func (self *FontSet) SetLanguage(lang language.Tag) {
	self.mutex.Lock()
	self.lang = lang
	self.mutex.Unlock()
}

// Add registers an already built font for the given size and
// language, replacing any previous font for that combination. Useful
// when fonts are built from embedded filesystems or shared between
// sets.
func (self *FontSet) Add(fnt *Font, size int, lang language.Tag) {
	self.mutex.Lock()
	self.fonts[fontKey{size, lang}] = fnt
	self.mutex.Unlock()
}

// AddSheet builds a sheet font from a .png glyph sheet and registers
// it for the given size and language. If that combination is already
// registered, the existing font is kept and the file isn't read.
func (self *FontSet) AddSheet(path string, size int, lang language.Tag) error {
	key := fontKey{size, lang}
	self.mutex.RLock()
	_, present := self.fonts[key]
	self.mutex.RUnlock()
	if present { return nil }

	fnt, err := NewFromSheetFile(path)
	if err != nil {
		Logger().Warn("font sheet not loaded", "path", path, "error", err)
		return err
	}
	self.mutex.Lock()
	if _, present := self.fonts[key]; !present {
		self.fonts[key] = fnt
	}
	self.mutex.Unlock()
	return nil
}

// AddTTF rasterizes a .ttf at the given pixel size and registers it
// for the given size and language, replacing any previous font for
// that combination.
func (self *FontSet) AddTTF(path string, size int, lang language.Tag) error {
	fnt, err := NewFromTTFFile(path, size)
	if err != nil {
		Logger().Warn("ttf font not loaded", "path", path, "size", size, "error", err)
		return err
	}
	self.mutex.Lock()
	self.fonts[fontKey{size, lang}] = fnt
	self.mutex.Unlock()
	return nil
}

// Get returns the font for the given pixel size, preferring the
// active language, then English, then any font of that size, then
// any font at all. Returns nil only if the set is empty.
func (self *FontSet) Get(size int) *Font {
	self.mutex.RLock()
	defer self.mutex.RUnlock()

	if fnt, found := self.fonts[fontKey{size, self.lang}]; found {
		return fnt
	}
	if fnt, found := self.fonts[fontKey{size, language.English}]; found {
		return fnt
	}
	for key, fnt := range self.fonts {
		if key.size == size { return fnt }
	}
	for _, fnt := range self.fonts {
		return fnt
	}
	return nil
}
