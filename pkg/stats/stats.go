package stats

import "unicode/utf8"

// Summary describes a set of solution chains.
type Summary struct {
	Solutions     int
	ShortestChain int
	LongestChain  int
	AvgWords      float64
	AvgWordLength float64
	DistinctWords int
}

// Summarize computes a Summary over chains.
func Summarize[C ~[]string](chains []C) Summary {
	var s Summary
	if len(chains) == 0 {
		return s
	}

	s.Solutions = len(chains)
	var words, letters int
	distinct := make(map[string]bool)
	for _, c := range chains {
		if s.ShortestChain == 0 || len(c) < s.ShortestChain {
			s.ShortestChain = len(c)
		}
		if len(c) > s.LongestChain {
			s.LongestChain = len(c)
		}
		for _, w := range c {
			words++
			letters += utf8.RuneCountInString(w)
			distinct[w] = true
		}
	}

	s.AvgWords = float64(words) / float64(len(chains))
	if words > 0 {
		s.AvgWordLength = float64(letters) / float64(words)
	}
	s.DistinctWords = len(distinct)
	return s
}

// FormatCount renders large counts compactly, e.g. 1.5K or 2M.
func FormatCount(count int64) string {
	if count < 0 {
		return "-" + FormatCount(-count)
	}
	if count >= 1000000 {
		return formatFloat(float64(count)/1000000) + "M"
	}
	if count >= 1000 {
		return formatFloat(float64(count)/1000) + "K"
	}
	return formatInt(count)
}

func formatFloat(f float64) string {
	intPart := int64(f)
	if f == float64(intPart) {
		return formatInt(intPart)
	}
	// Get first decimal digit
	decimalPart := int((f - float64(intPart)) * 10)
	return formatInt(intPart) + "." + string(byte('0'+decimalPart))
}

func formatInt(i int64) string {
	if i == 0 {
		return "0"
	}
	var result []byte
	for i > 0 {
		result = append([]byte{byte('0' + i%10)}, result...)
		i /= 10
	}
	return string(result)
}
