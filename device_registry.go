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

package hotasmap

const (
	// JoystickName is the Mapping key of the Thrustmaster Warthog joystick.
	JoystickName = "thrustmaster_warthog_joystick"
	// ThrottleName is the Mapping key of the Thrustmaster Warthog throttle.
	ThrottleName = "thrustmaster_warthog_throttle"
	// PedalsName is the Mapping key of the MFG Crosswind rudder pedals.
	PedalsName = "mfg_crosswind_pedals"
)

// Text box sizes used by the templates. Both templates are 1625 x 2201.
const (
	joystickWidth  = 190
	joystickHeight = 50

	throttleWidth  = 155
	throttleHeight = 35

	idleWidth  = 114
	idleHeight = 22

	thumbHatWidth  = 125
	thumbHatHeight = 29

	otherThumbWidth  = 140
	otherThumbHeight = 29
)

// axisLabelSize is the font size of the fixed axis captions.
const axisLabelSize = 20

var black = RGB{}

func box(name string, l, t, w, h int, key string, typ ControlType) Control {
	return Control{
		Name:    name,
		Left:    l,
		Top:     t,
		Width:   w,
		Height:  h,
		GameKey: key,
		Type:    typ,
		HJust:   0.5,
		VJust:   0.5,
	}
}

func stick(name string, l, t int, key string, typ ControlType) Control {
	return box(name, l, t, joystickWidth, joystickHeight, key, typ)
}

func throttle(name string, l, t int, key string, typ ControlType) Control {
	return box(name, l, t, throttleWidth, throttleHeight, key, typ)
}

func caption(text string, x, y, hjust float64) Label {
	return Label{
		Text:     text,
		X:        x,
		Y:        y,
		FontSize: axisLabelSize,
		Color:    black,
		HJust:    hjust,
		VJust:    0.5,
	}
}

// Joystick is the Thrustmaster HOTAS Warthog joystick.
var Joystick = DeviceType{
	Name: JoystickName,
	Controls: []Control{
		stick("Stick_Forward", 213, 1386, "Joy_YAxis", Analogue),
		stick("Stick_Backward", 189, 1710, "Joy_YAxis", Analogue),
		stick("Stick_Left", 39, 1592, "Joy_XAxis", Analogue),
		stick("Stick_Right", 377, 1608, "Joy_XAxis", Analogue),

		stick("TrimHat_Up", 1151, 107, "Joy_POV1Up", Momentary),
		stick("TrimHat_Left", 909, 254, "Joy_POV1Left", Momentary),
		stick("TrimHat_Right", 1380, 254, "Joy_POV1Right", Momentary),
		stick("TrimHat_Down", 1151, 399, "Joy_POV1Down", Momentary),

		// The game does not report the hat diagonals.
		stick("TrimHat_UpLeft", 942, 170, "", Unknown),
		stick("TrimHat_UpRight", 1355, 170, "", Unknown),
		stick("TrimHat_DownLeft", 942, 329, "", Unknown),
		stick("TrimHat_DownRight", 1355, 329, "", Unknown),

		stick("S1_Trigger_FirstStage", 726, 1739, "Joy_1", Momentary),
		stick("S2_WeaponsRelease", 275, 339, "Joy_2", Momentary),
		// Nosewheel steering button
		stick("S3_NSB", 1346, 1866, "Joy_3", Momentary),

		stick("S4_PinkieLever", 1308, 1983, "Joy_4", Momentary),
		// Master mode control
		stick("S5_MMC", 1224, 560, "Joy_5", Momentary),
		stick("S6_Trigger_SecondStage", 774, 1871, "Joy_6", Momentary),

		// Target management switch
		stick("S7_TMS_Up", 242, 501, "Joy_7", Momentary),
		stick("S8_TMS_Right", 419, 603, "Joy_8", Momentary),
		stick("S9_TMS_Down", 242, 708, "Joy_9", Momentary),
		stick("S10_TMS_Left", 62, 603, "Joy_10", Momentary),

		// Data management switch
		stick("S11_DMS_Up", 1187, 729, "Joy_11", Momentary),
		stick("S12_DMS_Right", 1365, 833, "Joy_12", Momentary),
		stick("S13_DMS_Down", 1187, 938, "Joy_13", Momentary),
		stick("S14_DMS_Left", 1007, 833, "Joy_14", Momentary),

		// Countermeasures management switch
		stick("S15_CMS_Forward", 246, 1044, "Joy_15", Momentary),
		stick("S16_CMS_Right", 426, 1148, "Joy_16", Momentary),
		stick("S17_CMS_Backward", 84, 1256, "Joy_17", Momentary),
		stick("S18_CMS_Left", 65, 1148, "Joy_18", Momentary),
		stick("S19_CMS_Press", 327, 1263, "Joy_19", Momentary),
	},
	Labels: []Label{
		caption("X axis", 475, 1525+joystickHeight/2, 1),
		caption("Y axis", 350, 1415+joystickHeight/2, 1),
	},
}

// Throttle is the Thrustmaster HOTAS Warthog throttle and control panel.
var Throttle = DeviceType{
	Name: ThrottleName,
	Controls: []Control{
		throttle("LeftThrottle", 1131, 2130, "Joy_RZAxis", Analogue),
		throttle("RightThrottle", 593, 2130, "Joy_ZAxis", Analogue),

		throttle("CoolieSwitchUp", 553, 1318, "Joy_POV1Up", Momentary),
		throttle("CoolieSwitchDown", 553, 1539, "Joy_POV1Down", Momentary),
		throttle("CoolieSwitchLeft", 730, 1429, "Joy_POV1Left", Momentary),
		throttle("CoolieSwitchRight", 379, 1429, "Joy_POV1Right", Momentary),

		throttle("CoolieSwitchUpLeft", 713, 1371, "", Unknown),
		throttle("CoolieSwitchUpRight", 400, 1371, "", Unknown),
		throttle("CoolieSwitchDownLeft", 713, 1486, "", Unknown),
		throttle("CoolieSwitchDownRight", 400, 1486, "", Unknown),

		throttle("ThrottleFrictionControl", 1361, 697, "Joy_UAxis", Analogue),

		throttle("SlewControl_LeftRight", 1156, 1444, "Joy_XAxis", Analogue),
		throttle("SlewControl_UpDown", 1056, 1348, "Joy_YAxis", Analogue),

		throttle("S1_SlewControl_Press", 957, 1571, "Joy_1", Momentary),
		box("S2_ThumbHat_Press", 285, 1707, thumbHatWidth, thumbHatHeight, "Joy_2", Momentary),
		box("S3_ThumbHat_Up", 233, 1567, thumbHatWidth, thumbHatHeight, "Joy_3", Momentary),
		box("S4_ThumbHat_Forward", 346, 1633, thumbHatWidth, thumbHatHeight, "Joy_4", Momentary),
		box("S5_ThumbHat_Down", 129, 1701, thumbHatWidth, thumbHatHeight, "Joy_5", Momentary),
		box("S6_ThumbHat_Backward", 117, 1633, thumbHatWidth, thumbHatHeight, "Joy_6", Momentary),
		box("S7_Speedbrake_Forward", 230, 1758, otherThumbWidth, otherThumbHeight, "Joy_7", Sticky),
		box("S8_Speedbrake_Backward", 230, 1804, otherThumbWidth, otherThumbHeight, "Joy_8", Momentary),
		box("S9_BoatSwitch_Forward", 230, 1857, otherThumbWidth, otherThumbHeight, "Joy_9", Sticky),
		box("S10_BoatSwitch_Backward", 230, 1903, otherThumbWidth, otherThumbHeight, "Joy_10", Sticky),
		box("S11_ChinaHat_Forward", 230, 1957, otherThumbWidth, otherThumbHeight, "Joy_11", Momentary),
		box("S12_ChinaHat_Backward", 230, 2003, otherThumbWidth, otherThumbHeight, "Joy_12", Momentary),
		throttle("S13_PinkieSwitch_Forward", 1396, 1901, "Joy_13", Sticky),
		throttle("S14_PinkieSwitch_Backward", 1396, 1963, "Joy_14", Sticky),
		throttle("S15_LeftThrottleButton", 1352, 1526, "Joy_15", Momentary),
		throttle("S16_LeftEngineFuelFlow", 653, 70, "Joy_16", Sticky),
		throttle("S17_RightEngineFuelFlow", 879, 70, "Joy_17", Sticky),
		throttle("S18_LeftEngineOperateDown", 1341, 412, "Joy_18", Sticky),
		throttle("S19_RightEngineOperateDown", 1341, 529, "Joy_19", Sticky),
		// Auxiliary power unit
		throttle("S20_APUStart", 1237, 593, "Joy_20", Sticky),
		throttle("S21_LandingGearWarningSilence", 1333, 792, "Joy_21", Momentary),
		throttle("S22_FlapsUp", 209, 741, "Joy_22", Sticky),
		throttle("S23_FlapsDown", 209, 795, "Joy_23", Sticky),
		// Enhanced attitude control
		throttle("S24_EAC", 175, 1043, "Joy_24", Sticky),
		throttle("S25_RadarAltimeter", 349, 1234, "Joy_25", Sticky),
		throttle("S26_AutopilotEngageDisengage", 1038, 1234, "Joy_26", Momentary),
		throttle("S27_AutopilotMode_Up", 1359, 989, "Joy_27", Sticky),
		throttle("S28_AutopilotMode_Down", 1359, 1043, "Joy_28", Sticky),
		box("S29_RightEngineIdle", 569, 713, idleWidth, idleHeight, "Joy_29", Sticky),
		box("S30_LeftEngineIdle", 787, 713, idleWidth, idleHeight, "Joy_30", Sticky),
		throttle("S31_LeftEngineOperateUp", 1341, 354, "Joy_31", Momentary),
		throttle("S32_RightEngineOperateUp", 1341, 471, "Joy_32", Momentary),
	},
	Labels: []Label{
		// The right throttle is drawn on the left of the template and vice
		// versa.
		caption("(Z axis)", 565, 2115, 1),
		caption("(Z rotation)", 1320, 2115, 0),
	},
}

// Pedals are the MFG Crosswind rudder pedals. They have no template of their
// own and are drawn on the joystick diagram.
var Pedals = DeviceType{
	Name: PedalsName,
	Controls: []Control{
		pedal("Rudder", 1850, "Joy_RZAxis"),
		pedal("LeftFootbrake", 1925, "Joy_XAxis"),
		pedal("RightFootbrake", 2000, "Joy_YAxis"),
	},
	Labels: []Label{
		caption("Pedals: Rudder\n(Z rotation)", 300, 1850+joystickHeight/2, 1),
		caption("Pedals: Left footbrake\n(X axis)", 300, 1925+joystickHeight/2, 1),
		caption("Pedals: Right footbrake\n(Y axis)", 300, 2000+joystickHeight/2, 1),
	},
}

func pedal(name string, t int, key string) Control {
	c := stick(name, 325, t, key, Analogue)
	c.HJust = 0
	return c
}

// deviceTypes is a list of every device that can be drawn.
var deviceTypes = []*DeviceType{
	&Joystick,
	&Throttle,
	&Pedals,
}

// Devices returns every known DeviceType.
func Devices() []DeviceType {
	res := make([]DeviceType, len(deviceTypes))
	for i, t := range deviceTypes {
		res[i] = *t
	}
	return res
}

// Device returns the DeviceType with the given Mapping key.
func Device(name string) (DeviceType, bool) {
	for _, t := range deviceTypes {
		if t.Name == name {
			return *t, true
		}
	}
	return DeviceType{}, false
}
