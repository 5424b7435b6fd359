package psfont

import (
	"encoding/binary"
	"math"

	"agg_go/internal/basics"
)

// pathVertexSize is the byte size of one (cmd, x, y) triple in an outline
// command-vertex stream: a one-byte command followed by two little-endian
// float32 coordinates.
const pathVertexSize = 1 + 4 + 4

// PathAdaptor replays a cached outline blob as a vertex stream, implementing
// conv.VertexSource so it can be wrapped directly by conv.ConvCurve (spec
// §4.6). SerializeFrom attaches a blob body and translation without copying
// the backing bytes.
type PathAdaptor struct {
	data  []byte
	count uint32
	pos   uint32
	dx    float64
	dy    float64
}

// SerializeFrom attaches the decoded body of an outline blob (vertexCount
// triples of (cmd,x,y)) to be replayed translated by (x, y).
func (p *PathAdaptor) SerializeFrom(vertexCount uint32, body []byte, x, y float64) {
	p.data = body
	p.count = vertexCount
	p.pos = 0
	p.dx = x
	p.dy = y
}

// Translate replaces the replay offset set by SerializeFrom.
// Adapter.GenerateRaster does not call it; it passes its offset to
// SerializeFrom directly.
func (p *PathAdaptor) Translate(x, y float64) {
	p.dx = x
	p.dy = y
}

// Rewind resets iteration to the start of the attached blob.
func (p *PathAdaptor) Rewind(pathID uint) {
	p.pos = 0
}

// Vertex returns the next (cmd, x, y) triple, translated by the attached
// offset. Past the last vertex it returns PathCmdStop.
func (p *PathAdaptor) Vertex() (x, y float64, cmd basics.PathCommand) {
	if p.pos >= p.count {
		return 0, 0, basics.PathCmdStop
	}
	off := p.pos * pathVertexSize
	if int(off+pathVertexSize) > len(p.data) {
		return 0, 0, basics.PathCmdStop
	}
	c := basics.PathCommand(p.data[off])
	vx := float64(decodeFloat32(p.data[off+1 : off+5]))
	vy := float64(decodeFloat32(p.data[off+5 : off+9]))
	p.pos++
	return vx + p.dx, vy + p.dy, c
}

// EncodeOutlineVertex appends one (cmd, x, y) triple to the command-vertex
// stream being built for an outline blob.
func EncodeOutlineVertex(buf []byte, cmd basics.PathCommand, x, y float64) []byte {
	var v [pathVertexSize]byte
	v[0] = byte(cmd)
	binary.LittleEndian.PutUint32(v[1:5], math.Float32bits(float32(x)))
	binary.LittleEndian.PutUint32(v[5:9], math.Float32bits(float32(y)))
	return append(buf, v[:]...)
}

func decodeFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
