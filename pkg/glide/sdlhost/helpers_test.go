package sdlhost

// fixedMetrics measures every character as 10px wide.
type fixedMetrics struct{}

func (fixedMetrics) TitleHeight() int32 { return 40 }
func (fixedMetrics) LineHeight() int32  { return 20 }

func (fixedMetrics) TextWidth(text string) int32 {
	return int32(len(text)) * 10
}

func (m fixedMetrics) Wrap(text string, maxWidth int32) []string {
	return wrapText(text, maxWidth, m.TextWidth)
}
