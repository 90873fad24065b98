package parinfer

func makeTabStop(opener *Paren) TabStop {
	var argCol *int
	if opener.ArgCol != nil {
		v := *opener.ArgCol
		argCol = &v
	}
	return TabStop{
		Ch:     opener.Ch,
		Col:    opener.Col,
		Line:   opener.Line,
		ArgCol: argCol,
	}
}

func (s *state) tabStopLine() LineNumber {
	if s.selectionStartLine != noLine {
		return s.selectionStartLine
	}
	return s.cursorLine
}

// setTabStops builds the tab-stop list for the line containing the
// cursor (or selection start) from the paren stack, plus — in Paren
// mode — the current trail's openers in reverse (spec.md §4.6).
func (s *state) setTabStops() {
	if s.tabStopLine() != s.line {
		return
	}

	stops := make([]TabStop, 0, len(s.parenStack))
	for _, opener := range s.parenStack {
		stops = append(stops, makeTabStop(opener))
	}

	if s.mode == ModeParen {
		for i := len(s.parenTrail.openers) - 1; i >= 0; i-- {
			stops = append(stops, makeTabStop(s.parenTrail.openers[i]))
		}
	}

	for i := 1; i < len(stops); i++ {
		if stops[i-1].ArgCol != nil && *stops[i-1].ArgCol >= stops[i].Col {
			stops[i-1].ArgCol = nil
		}
	}

	s.tabStops = stops
}
