package psfont

import (
	"testing"

	"agg_go/internal/basics"
)

func TestPathAdaptorRoundTrip(t *testing.T) {
	var body []byte
	body = EncodeOutlineVertex(body, basics.PathCmdMoveTo, 1, 2)
	body = EncodeOutlineVertex(body, basics.PathCmdLineTo, 3, 4)
	body = EncodeOutlineVertex(body, basics.PathCmdLineTo, 5, 6)

	var p PathAdaptor
	p.SerializeFrom(3, body, 10, 20)

	want := [][3]float64{{11, 22, float64(basics.PathCmdMoveTo)}, {13, 24, float64(basics.PathCmdLineTo)}, {15, 26, float64(basics.PathCmdLineTo)}}
	for i, w := range want {
		x, y, cmd := p.Vertex()
		if x != w[0] || y != w[1] || float64(cmd) != w[2] {
			t.Fatalf("vertex %d: got (%v,%v,%v), want (%v,%v,%v)", i, x, y, cmd, w[0], w[1], w[2])
		}
	}

	if _, _, cmd := p.Vertex(); !basics.IsStop(cmd) {
		t.Fatalf("expected PathCmdStop past the last vertex, got %v", cmd)
	}
}

func TestPathAdaptorRewindReplays(t *testing.T) {
	var body []byte
	body = EncodeOutlineVertex(body, basics.PathCmdMoveTo, 0, 0)

	var p PathAdaptor
	p.SerializeFrom(1, body, 0, 0)
	p.Vertex()
	if _, _, cmd := p.Vertex(); !basics.IsStop(cmd) {
		t.Fatal("expected stop after draining the one vertex")
	}

	p.Rewind(0)
	if _, _, cmd := p.Vertex(); basics.IsStop(cmd) {
		t.Fatal("Rewind should make the vertex replayable again")
	}
}

func TestPathAdaptorTranslate(t *testing.T) {
	var body []byte
	body = EncodeOutlineVertex(body, basics.PathCmdMoveTo, 1, 1)

	var p PathAdaptor
	p.SerializeFrom(1, body, 0, 0)
	p.Translate(100, 200)

	x, y, _ := p.Vertex()
	if x != 101 || y != 201 {
		t.Fatalf("Translate not applied: got (%v, %v)", x, y)
	}
}

func TestOutlineHeaderRoundTrip(t *testing.T) {
	var body []byte
	body = EncodeOutlineVertex(body, basics.PathCmdMoveTo, 1, 2)

	header := encodeOutlineHeader(1)
	blob := append(header[:], body...)

	count, decoded, ok := decodeOutlineHeader(blob)
	if !ok || count != 1 {
		t.Fatalf("decodeOutlineHeader failed: count=%d ok=%v", count, ok)
	}
	if len(decoded) != len(body) {
		t.Fatalf("decoded body length mismatch: got %d want %d", len(decoded), len(body))
	}
}

func TestDecodeOutlineHeaderRejectsShortBlob(t *testing.T) {
	if _, _, ok := decodeOutlineHeader([]byte{1, 2, 3}); ok {
		t.Fatal("expected decodeOutlineHeader to reject a blob shorter than the header")
	}
}
