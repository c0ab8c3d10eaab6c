package core

import (
	"sync"

	"github.com/zeu5/bandit-regret-testing/util"
)

// History records, one entry per round, the chosen arm and the cumulative
// regret after that round. Entries are append-only.
type History struct {
	mtx     *sync.Mutex
	arms    []int
	regrets []float64
}

func NewHistory() *History {
	return &History{
		mtx:     &sync.Mutex{},
		arms:    make([]int, 0),
		regrets: make([]float64, 0),
	}
}

func (h *History) Add(arm int, regret float64) {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	h.arms = append(h.arms, arm)
	h.regrets = append(h.regrets, regret)
}

func (h *History) Len() int {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return len(h.arms)
}

func (h *History) Arm(i int) int {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return h.arms[i]
}

func (h *History) Regret(i int) float64 {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return h.regrets[i]
}

func (h *History) Arms() []int {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return util.CopyIntSlice(h.arms)
}

func (h *History) Regrets() []float64 {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return util.CopyFloatSlice(h.regrets)
}
