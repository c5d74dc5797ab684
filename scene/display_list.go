package scene

// BuiltDisplayList is an immutable snapshot of one pipeline's serialized
// display items. Building and parsing the payload belong to the
// display-list builder and decoder; the scene retains the bytes and hands
// them back out unchanged.
//
// A BuiltDisplayList is shared by reference between the scene, the frame
// builder, and capture tooling. It must never be mutated after
// construction; updates install a whole new snapshot instead.
type BuiltDisplayList struct {
	data      []byte
	itemCount int
}

// NewBuiltDisplayList creates a display list over the given serialized
// payload. The payload is retained without copying; the caller must not
// mutate it afterwards.
func NewBuiltDisplayList(data []byte, itemCount int) BuiltDisplayList {
	return BuiltDisplayList{data: data, itemCount: itemCount}
}

// Data returns the serialized payload. The slice shares backing storage
// with the display list and must be treated as read-only.
func (dl BuiltDisplayList) Data() []byte {
	return dl.data
}

// Size returns the payload size in bytes.
func (dl BuiltDisplayList) Size() int {
	return len(dl.data)
}

// ItemCount returns the number of display items in the payload.
func (dl BuiltDisplayList) ItemCount() int {
	return dl.itemCount
}

// IsEmpty returns true if the display list has no content.
func (dl BuiltDisplayList) IsEmpty() bool {
	return len(dl.data) == 0
}
