package base

import (
	"fmt"
	"sync"
)

// portPool hands out ChromeDriver ports so concurrent Selenium
// sessions never collide.
type portPool struct {
	mu    sync.Mutex
	inUse map[int]bool
	base  int
	size  int
}

var (
	pool     *portPool
	poolOnce sync.Once
)

func driverPorts() *portPool {
	poolOnce.Do(func() {
		pool = &portPool{base: 4444, size: 16, inUse: make(map[int]bool)}
	})
	return pool
}

func (p *portPool) acquire() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := 0; i < p.size; i++ {
		port := p.base + i
		if !p.inUse[port] {
			p.inUse[port] = true
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available ports in range %d-%d", p.base, p.base+p.size-1)
}

func (p *portPool) release(port int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inUse[port] = false
}
