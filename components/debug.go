package components

import (
	"github.com/automoto/doomerang-movement/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ProbeBox is one collision probe swept area and whether it hit.
type ProbeBox struct {
	Name string
	Area gamemath.Rect
	Hit  bool
}

// MotionDebugData collects what the controller did during the last fixed
// tick: the probe boxes, the vertical driver and how many subsystems wrote
// vertical velocity.
type MotionDebugData struct {
	Boxes          []ProbeBox
	Driver         string
	VerticalWrites int
}

func (d *MotionDebugData) Reset() {
	d.Boxes = d.Boxes[:0]
	d.Driver = ""
	d.VerticalWrites = 0
}

func (d *MotionDebugData) Record(name string, area gamemath.Rect, hit bool) {
	d.Boxes = append(d.Boxes, ProbeBox{Name: name, Area: area, Hit: hit})
}

var MotionDebug = donburi.NewComponentType[MotionDebugData]()
