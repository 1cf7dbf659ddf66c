// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// faceCache is a least recently used cache of font faces keyed by
// their size.
type faceCache struct {
	m          map[fixed.Int26_6]*faceElem
	head, tail *faceElem
}

type faceElem struct {
	next, prev *faceElem
	key        fixed.Int26_6
	face       font.Face
}

const maxFaces = 32

func (l *faceCache) Get(k fixed.Int26_6) (font.Face, bool) {
	if e, ok := l.m[k]; ok {
		l.remove(e)
		l.insert(e)
		return e.face, true
	}
	return nil, false
}

func (l *faceCache) Put(k fixed.Int26_6, f font.Face) {
	if l.m == nil {
		l.m = make(map[fixed.Int26_6]*faceElem)
		l.head = new(faceElem)
		l.tail = new(faceElem)
		l.head.prev = l.tail
		l.tail.next = l.head
	}
	val := &faceElem{key: k, face: f}
	l.m[k] = val
	l.insert(val)
	if len(l.m) > maxFaces {
		oldest := l.tail.next
		l.remove(oldest)
		delete(l.m, oldest.key)
		oldest.face.Close()
	}
}

func (l *faceCache) Len() int {
	return len(l.m)
}

func (l *faceCache) remove(e *faceElem) {
	e.next.prev = e.prev
	e.prev.next = e.next
}

func (l *faceCache) insert(e *faceElem) {
	e.next = l.head
	e.prev = l.head.prev
	e.prev.next = e
	e.next.prev = e
}
