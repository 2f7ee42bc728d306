package server

type ProgressView struct {
	Completed  int
	Total      int
	Percentage int
}

func nightProgress(rounds []Round) ProgressView {
	view := ProgressView{Total: len(rounds)}
	for _, round := range rounds {
		if round.Completed {
			view.Completed++
		}
	}
	if view.Total > 0 {
		view.Percentage = view.Completed * 100 / view.Total
	}
	return view
}

// updateCelebration latches the night's celebration flag and reports true
// only on the transition into full completion, so the pulse fires once.
func (n *Night) updateCelebration(progress ProgressView) bool {
	full := progress.Total > 0 && progress.Completed == progress.Total
	if !full {
		n.Celebrated = false
		return false
	}
	if n.Celebrated {
		return false
	}
	n.Celebrated = true
	return true
}
