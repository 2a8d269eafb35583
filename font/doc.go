// font provides small helpers to parse .ttf and .otf files into
// [sfnt.Font] values, from raw bytes, the filesystem or an embedded
// [io/fs.FS]. The parent gridfont package uses it when rasterizing
// atlases from TrueType sources, but it has no dependency on the
// rest of the engine and can be used on its own.
//
// [sfnt.Font]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Font
package font
