package flatrb

import (
	"bytes"
	"encoding/binary"
	"unsafe"
)

// imageHeader is the on-wire layout of the 4 structural fields that open
// every image, in native link width I.
type imageHeader[I Index] struct {
	LiveCount  I
	RootIndex  I
	Capacity   I
	IndexWidth uint8
}

// Image serializes the tree's backing allocation to bytes: the header
// followed by Cap() slot records, per §6. The slot records are produced by
// reinterpreting the backing slice's memory directly, so K and V must have
// a stable, pointer-free layout for the image to be meaningful outside
// the process that produced it — flatrb does not transcode key/value
// representations, matching the spec's "the core does not itself
// transcode" language.
//
// This is the one place in the package built on the standard library
// rather than a third-party dependency: no library in the example corpus
// covers raw backing-memory reinterpretation, so Image/SetBacking use
// unsafe and encoding/binary directly.
func (t *Tree[I, K, V]) Image() []byte {
	var buf bytes.Buffer
	hdr := imageHeader[I]{
		LiveCount:  t.hdr.liveCount,
		RootIndex:  t.hdr.rootIndex,
		Capacity:   t.hdr.capacity,
		IndexWidth: t.hdr.indexWidth,
	}
	// binary.Write never fails for fixed-width numeric structs; the only
	// error path is an unsupported field type, which imageHeader does not
	// have.
	_ = binary.Write(&buf, binary.LittleEndian, hdr)

	if len(t.slots) > 0 {
		n := len(t.slots) * int(unsafe.Sizeof(t.slots[0]))
		raw := unsafe.Slice((*byte)(unsafe.Pointer(&t.slots[0])), n)
		buf.Write(raw)
	}
	return buf.Bytes()
}

// SetBacking adopts image as the tree's new backing, discarding the
// current one. It fails with WidthMismatch if image's index width differs
// from t's; a corrupt or truncated image (wrong record count for its
// declared capacity, or a live slot whose color is neither red nor black)
// is a programming error and panics, per §7's treatment of internal
// invariant violations.
func (t *Tree[I, K, V]) SetBacking(image []byte) error {
	var hdr imageHeader[I]
	hdrSize := binary.Size(hdr)
	if len(image) < hdrSize {
		panic("flatrb: corrupt image: too short for header")
	}
	if err := binary.Read(bytes.NewReader(image[:hdrSize]), binary.LittleEndian, &hdr); err != nil {
		panic("flatrb: corrupt image: " + err.Error())
	}
	if hdr.IndexWidth != widthOf[I]() {
		return newError("SetBacking", WidthMismatch)
	}

	var zeroSlot slot[I, K, V]
	slotSize := int(unsafe.Sizeof(zeroSlot))
	want := int(hdr.Capacity) * slotSize
	if len(image)-hdrSize != want {
		panic("flatrb: corrupt image: slot region size does not match declared capacity")
	}

	fresh := make([]slot[I, K, V], hdr.Capacity)
	if want > 0 {
		raw := unsafe.Slice((*byte)(unsafe.Pointer(&fresh[0])), want)
		copy(raw, image[hdrSize:])
	}
	for i := I(0); i < hdr.LiveCount; i++ {
		if c := fresh[i].color; c != red && c != black {
			panic("flatrb: corrupt image: slot color is neither red nor black")
		}
	}

	t.slots = fresh
	t.hdr = header[I]{
		liveCount:  hdr.LiveCount,
		rootIndex:  hdr.RootIndex,
		capacity:   hdr.Capacity,
		indexWidth: hdr.IndexWidth,
	}
	return nil
}
