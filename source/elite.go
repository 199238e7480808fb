//
// Copyright (c) 2024 Matthew Penner
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package source

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/matthewpi/hotasmap"
)

// Default Elite:Dangerous device names.
const (
	DefaultEliteJoystick = "ThrustMasterWarthogJoystick"
	DefaultEliteThrottle = "ThrustMasterWarthogThrottle"
	// DefaultElitePedals is the USB vendor and product id of the MFG
	// Crosswind, the game does not give it a friendly name.
	DefaultElitePedals = "16D00A38"
)

// bindingElements are the children of a function element that bind it to a
// device key, in the order they are processed.
var bindingElements = []string{"Primary", "Secondary", "Binding"}

// EliteDevices holds the names given to each device by an Elite:Dangerous
// binding file.
type EliteDevices struct {
	Joystick string `yaml:"joystick"`
	Throttle string `yaml:"throttle"`
	Pedals   string `yaml:"pedals"`
}

// DefaultEliteDevices returns the device names used by a standard install.
func DefaultEliteDevices() EliteDevices {
	return EliteDevices{
		Joystick: DefaultEliteJoystick,
		Throttle: DefaultEliteThrottle,
		Pedals:   DefaultElitePedals,
	}
}

// deviceType returns the DeviceType known by the given game device name.
func (d EliteDevices) deviceType(name string) (hotasmap.DeviceType, bool) {
	switch {
	case name == "":
		return hotasmap.DeviceType{}, false
	case name == d.Joystick:
		return hotasmap.Joystick, true
	case name == d.Throttle:
		return hotasmap.Throttle, true
	case name == d.Pedals:
		return hotasmap.Pedals, true
	}
	return hotasmap.DeviceType{}, false
}

// EliteLabel returns the human label of an Elite:Dangerous function, unknown
// functions are returned as is.
func EliteLabel(function string) string {
	if l, ok := eliteLabels[function]; ok {
		return l
	}
	return function
}

// xmlNode is a generic XML element.
type xmlNode struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Nodes   []xmlNode  `xml:",any"`
}

// child returns the first child element with the given name.
func (n *xmlNode) child(name string) (*xmlNode, bool) {
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == name {
			return &n.Nodes[i], true
		}
	}
	return nil, false
}

// attr returns the value of an attribute, missing attributes are empty.
func (n *xmlNode) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// ReadElite reads an Elite:Dangerous binding file. Functions look like:
//
//	<FunctionName>
//		<Primary Device="DEVICE" Key="KEY" />
//		<Secondary Device="DEVICE" Key="KEY" />
//	</FunctionName>
//	<FunctionName>
//		<Binding Device="DEVICE" Key="KEY" />
//	</FunctionName>
//
// Every control bound to a key of a known device is labelled with the
// function. The returned Mapping has an entry for every control.
func ReadElite(r io.Reader, devices EliteDevices, horizons bool, log *zap.Logger) (hotasmap.Mapping, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var root xmlNode
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("source: failed to parse binding file: %w", err)
	}
	if err := checkTrailing(dec); err != nil {
		return nil, fmt.Errorf("source: failed to parse binding file: %w", err)
	}
	log.Debug("parsed binding file", zap.String("root", root.XMLName.Local), zap.Int("nodes", len(root.Nodes)))

	m := hotasmap.NewMapping()
	for i := range root.Nodes {
		fn := &root.Nodes[i]
		function := fn.XMLName.Local
		if !horizons && horizonsFunctions[function] {
			continue
		}
		for _, name := range bindingElements {
			child, ok := fn.child(name)
			if !ok {
				continue
			}
			bind(m, devices, function, child.attr("Device"), child.attr("Key"), log)
		}
	}
	m.CompleteBlanks()
	return m, nil
}

// checkTrailing reads the rest of a document after its root element, only
// whitespace, comments and processing instructions may follow it.
func checkTrailing(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return fmt.Errorf("junk after document element: <%s>", t.Name.Local)
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return errors.New("junk after document element")
			}
		case xml.EndElement, xml.Directive:
			return errors.New("junk after document element")
		}
	}
}

// bind labels every control bound to device and key with function.
func bind(m hotasmap.Mapping, devices EliteDevices, function, device, key string, log *zap.Logger) {
	log.Debug("processing binding",
		zap.String("function", function),
		zap.String("device", device),
		zap.String("key", key),
	)
	t, ok := devices.deviceType(device)
	if !ok {
		return
	}
	for _, c := range t.ControlsForKey(key) {
		log.Debug("found control", zap.String("device", t.Name), zap.String("control", c.Name))
		m.Add(t.Name, c.Name, EliteLabel(function))
	}
}
