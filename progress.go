//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package fdm

type Progressor interface {
	Show(percent float32)
	Stop()
}

type nilProgress struct{}

func (np *nilProgress) Show(float32) {}
func (np *nilProgress) Stop()        {}

var defaultProgress = Progressor(&nilProgress{})

func SetProgress(prog Progressor) {
	if prog == Progressor(nil) {
		prog = &nilProgress{}
	}
	defaultProgress = prog
}

// Progress counts completed steps out of a fixed total. Emission is
// synchronous, so updates are reported inline.
type Progress struct {
	Progressor
	total     int
	completed int
}

func NewProgress(total int) (prog *Progress) {
	prog = &Progress{
		Progressor: defaultProgress,
		total:      total,
	}

	prog.Show(0.0)

	return
}

func (prog *Progress) Indicate() {
	prog.completed++
	if prog.completed < prog.total {
		prog.Show(float32(prog.completed) * 100.0 / float32(prog.total))
	}
}

func (prog *Progress) Close() {
	prog.Show(100.0)
	prog.Stop()
}
