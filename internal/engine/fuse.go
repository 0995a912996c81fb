package engine

import "github.com/vhdlblocks/vhdlblocks/internal/block"

// drain releases the queued blocks in order. The newest line break or
// empty line block is held back: a line break block that follows it is
// folded into it, making it an empty line block. Any other block releases
// the held block first.
func (p *ParserState) drain() {
	for _, id := range p.queue {
		b := p.blocks.Get(id)
		if p.held.IsValid() && b.Kind == block.KindLinebreak {
			p.blocks.Extend(p.held, b.End)
			p.blocks.Link(p.held, p.blocks.Next(id))
			if p.last == id {
				p.last = p.held
			}
			continue
		}
		if p.held.IsValid() {
			p.ready = append(p.ready, p.held)
			p.held = block.None
		}
		if b.Kind.IsLinebreak() {
			p.held = id
			continue
		}
		p.ready = append(p.ready, id)
	}
	p.queue = p.queue[:0]
}
