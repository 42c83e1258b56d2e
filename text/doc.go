// Package text renders strings onto dib surfaces.
//
// The dib engine composites glyphs it is handed as 0 to 16 level coverage
// maps and knows nothing about fonts. This package supplies those maps:
// it shapes a string into positioned glyph ids and rasterizes each glyph
// outline into a coverage surface.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF data)
//   - Face: a FontSource at one size, caching rasterized glyphs
//   - Shaper: converts text to positioned glyphs (go-text/typesetting)
//
// # Example usage
//
//	source, err := text.GoRegular()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	face := source.Face(16)
//
//	st := dib.NewDrawState()
//	st.TextColor = dib.RGB(0, 0, 0x80)
//	err = text.DrawString(s, 10, 40, "Hello, DIB!", face, st, nil)
package text
