package breakpoint

// Default returns the stock device table used when a project defines
// no breakpoints of its own. Widths are raw pixels; screen.large is
// open-ended.
func Default() *Table {
	return NewTable().
		Set("mobile", NewTable().
			Set("portrait", Span{Min: 320, Max: 479}).
			Set("landscape", Span{Min: 480, Max: 599})).
		Set("tablet", NewTable().
			Set("portrait", Span{Min: 720, Max: 959}).
			Set("landscape", Span{Min: 960, Max: 1219})).
		Set("screen", NewTable().
			Set("small", Span{Min: 1220, Max: 1459}).
			Set("medium", Span{Min: 1460, Max: 1699}).
			Set("large", float64(1700)))
}
