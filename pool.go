package tidyjson

import "sync"

const maxRetainedCap = 64 * 1024

var scanStatePool = sync.Pool{
	New: func() any {
		return &scanState{}
	},
}

func acquireScanState() *scanState {
	return scanStatePool.Get().(*scanState)
}

func releaseScanState(s *scanState) {
	if s == nil {
		return
	}
	s.tab = ""
	if cap(s.src) > maxRetainedCap {
		s.src = nil
	} else {
		s.src = s.src[:0]
	}
	if cap(s.out) > maxRetainedCap {
		s.out = nil
	} else {
		s.out = s.out[:0]
	}
	scanStatePool.Put(s)
}
