// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"

	"github.com/MKhiriev/go-pass-vault/models"
)

// pinnedCursor fans the latest pinned item list out to subscribers. A slow
// subscriber only ever sees the newest list: an unread value is replaced.
type pinnedCursor struct {
	mu      sync.Mutex
	current []models.CachedItem
	nextID  int
	subs    map[int]chan []models.CachedItem
}

func newPinnedCursor() *pinnedCursor {
	return &pinnedCursor{subs: make(map[int]chan []models.CachedItem)}
}

func (p *pinnedCursor) subscribe() (<-chan []models.CachedItem, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++

	ch := make(chan []models.CachedItem, 1)
	ch <- cloneItems(p.current)
	p.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			delete(p.subs, id)
			close(ch)
		})
	}
}

func (p *pinnedCursor) publish(items []models.CachedItem) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = items
	for _, ch := range p.subs {
		select {
		case <-ch:
		default:
		}
		ch <- cloneItems(items)
	}
}

func cloneItems(items []models.CachedItem) []models.CachedItem {
	out := make([]models.CachedItem, len(items))
	copy(out, items)
	return out
}
