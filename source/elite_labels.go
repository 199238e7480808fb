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

// eliteLabels maps Elite:Dangerous function names to short human labels.
var eliteLabels = map[string]string{
	"AheadThrust_Landing":             "Ldg/Thrust fwd/back",
	"AheadThrust":                     "Thrust fwd/back",
	"BackwardKey":                     "Backward",
	"BackwardThrustButton_Landing":    "Ldg/Thrust back",
	"BackwardThrustButton":            "Thrust back",
	"CamPitchAxis":                    "Cam. pitch",
	"CamPitchDown":                    "Cam. pitch down",
	"CamPitchUp":                      "Cam. pitch up",
	"CamTranslateBackward":            "Cam. backward",
	"CamTranslateDown":                "Cam. xlate down",
	"CamTranslateForward":             "Cam. forward",
	"CamTranslateLeft":                "Cam. xlate L",
	"CamTranslateRight":               "Cam. xlate R",
	"CamTranslateUp":                  "Cam. xlate up",
	"CamTranslateXAxis":               "Cam. xlate L/R",
	"CamTranslateYAxis":               "Cam. xlate fwd/back",
	"CamTranslateZAxis":               "Cam. xlate up/down",
	"CamTranslateZHold":               "Cam. xlate Z hold",
	"CamYawAxis":                      "Cam. yaw",
	"CamYawLeft":                      "Cam. yaw L",
	"CamYawRight":                     "Cam. yaw R",
	"CamZoomAxis":                     "Cam. zoom",
	"CamZoomIn":                       "Cam. zoom in",
	"CamZoomOut":                      "Cam. zoom out",
	"CycleFireGroupNext":              "Next firegroup",
	"CycleFireGroupPrevious":          "Prev. firegroup",
	"CycleNextHostileTarget":          "Next hostile target",
	"CycleNextPanel":                  "UI next panel",
	"CycleNextSubsystem":              "Next target subsyst.",
	"CycleNextTarget":                 "Next target",
	"CyclePreviousHostileTarget":      "Prev. hostile target",
	"CyclePreviousPanel":              "UI prev. panel",
	"CyclePreviousSubsystem":          "Prev. target subsyst.",
	"CyclePreviousTarget":             "Prev. target",
	"DeployHardpointToggle":           "Hardpoints ±",
	"DeployHeatSink":                  "Heatsink",
	"DisableRotationCorrectToggle":    "Rotat. correction",
	"DownThrustButton_Landing":        "Ldg/Thrust down",
	"DownThrustButton":                "Thrust down",
	"EjectAllCargo":                   "Eject cargo",
	"FireChaffLauncher":               "Chaff",
	"FocusCommsPanel":                 "UI COMMS panel",
	"FocusLeftPanel":                  "UI LEFT panel",
	"FocusRadarPanel":                 "UI RADAR panel",
	"FocusRightPanel":                 "UI RIGHT panel",
	"ForwardKey":                      "Forward",
	"ForwardThrustButton_Landing":     "Ldg/Thrust fwd",
	"GalaxyMapOpen":                   "Galaxy map",
	"HeadLookPitchAxisRaw":            "Headlook up/down",
	"HeadLookPitchDown":               "Headlook down",
	"HeadLookPitchUp":                 "Headlook up",
	"HeadLookReset":                   "Reset headlook",
	"HeadLookToggle":                  "Headlook ±",
	"HeadLookYawAxis":                 "Headlook L/R",
	"HeadLookYawLeft":                 "Headlook L",
	"HeadLookYawRight":                "Headlook R",
	"HMDReset":                        "Reset VR orientation",
	"HyperSuperCombination":           "Frame Shift Drive ±",
	"IncreaseEnginesPower":            "Pwr→ENGINES",
	"IncreaseSystemsPower":            "Pwr→SYSTEMS",
	"IncreaseWeaponsPower":            "Pwr→WEAPONS",
	"LandingGearToggle":               "Landing gear ±",
	"LateralThrustAlternate":          "Lateral thrust (ALT)",
	"LateralThrust_Landing":           "Ldg/Lateral thrust",
	"LateralThrustRaw":                "Lateral thrust",
	"LeftThrustButton_Landing":        "Ldg/Thrust L",
	"LeftThrustButton":                "Thrust L",
	"MicrophoneMute":                  "Mic. mute",
	"OrbitLinesToggle":                "Orbit lines ±",
	"PhotoCameraToggle":               "Camera view ±",
	"PitchAxisAlternate":              "Pitch (ALT)",
	"PitchAxis_Landing":               "Ldg/Pitch",
	"PitchAxisRaw":                    "Pitch",
	"PitchDownButton_Landing":         "Ldg/Pitch down",
	"PitchDownButton":                 "Pitch down",
	"PitchUpButton_Landing":           "Ldg/Pitch up",
	"PitchUpButton":                   "Pitch up",
	"PrimaryFire":                     "Fire 1",
	"QuickCommsPanel":                 "Quick comms",
	"RadarDecreaseRange":              "Radar +",
	"RadarIncreaseRange":              "Radar –",
	"RadarRangeAxis":                  "Radar range",
	"ResetPowerDistribution":          "Balance pwr distrib.",
	"RightThrustButton_Landing":       "Ldg/Thrust R",
	"RightThrustButton":               "Thrust R",
	"RollAxisAlternate":               "Roll (ALT)",
	"RollAxis_Landing":                "Ldg/Roll",
	"RollAxisRaw":                     "Roll",
	"RollLeftButton_Landing":          "Ldg/Roll L",
	"RollLeftButton":                  "Roll L",
	"RollRightButton_Landing":         "Ldg/Roll R",
	"RollRightButton":                 "Roll R",
	"SecondaryFire":                   "Fire 2",
	"SelectHighestThreat":             "Highest threat",
	"SelectTargetsTarget":             "Target's target",
	"SelectTarget":                    "Target ahead",
	"SetSpeed100":                     "Speed 100%",
	"SetSpeed25":                      "Speed 25%",
	"SetSpeed50":                      "Speed 50%",
	"SetSpeed75":                      "Speed 75%",
	"SetSpeedMinus100":                "Speed –100%",
	"SetSpeedMinus25":                 "Speed –25%",
	"SetSpeedMinus50":                 "Speed –50%",
	"SetSpeedMinus75":                 "Speed –75%",
	"SetSpeedZero":                    "Speed 0%",
	"ShipSpotLightToggle":             "Lights ±",
	"ShowPGScoreSummaryInput":         "ShowPGScoreSummaryInput",
	"SystemMapOpen":                   "System map",
	"TargetNextRouteSystem":           "Next system in route",
	"TargetWingman0":                  "Wingman 1",
	"TargetWingman1":                  "Wingman 2",
	"TargetWingman2":                  "Wingman 3",
	"ThrottleAxis":                    "Throttle",
	"ToggleButtonUpInput":             "Silent running",
	"ToggleCargoScoop":                "Cargo scoop",
	"ToggleFlightAssist":              "Flight Assist",
	"ToggleReverseThrottleInput":      "Reverse throttle",
	"UI_Back":                         "UI back",
	"UI_Down":                         "UI down",
	"UIFocus":                         "UI focus",
	"UI_Left":                         "UI left",
	"UI_Right":                        "UI right",
	"UI_Select":                       "UI select",
	"UI_Up":                           "UI up",
	"UpThrustButton_Landing":          "Ldg/Thrust up",
	"UpThrustButton":                  "Thrust up",
	"UseAlternateFlightValuesToggle":  "Toggle ALT flight controls",
	"UseBoostJuice":                   "Engine boost",
	"UseShieldCell":                   "Shield cell",
	"VerticalThrustAlternate":         "Vertical thrust (ALT)",
	"VerticalThrust_Landing":          "Ldg/Vertical thrust",
	"VerticalThrustRaw":               "Vertical thrust",
	"WingNavLock":                     "Wingman nav lock",
	"YawAxisRaw":                      "Yaw",
	"YawLeftButton_Landing":           "Ldg/Yaw L",
	"YawLeftButton":                   "Yaw L",
	"YawRightButton_Landing":          "Ldg/Yaw R",
	"YawRightButton":                  "Yaw R",
	"AutoBreakBuggyButton":            "SRV Handbrake",
	"BuggyPitchAxis":                  "SRV Pitch",
	"BuggyPrimaryFireButton":          "SRV Fire 1",
	"BuggyRollAxisRaw":                "SRV Roll",
	"BuggySecondaryFireButton":        "SRV Fire 2",
	"BuggyToggleReverseThrottleInput": "SRV Reverse throttle",
	"BuggyTurretPitchDownButton":      "SRV Turret down",
	"BuggyTurretPitchUpButton":        "SRV Turret up",
	"BuggyTurretYawLeftButton":        "SRV Turret L",
	"BuggyTurretYawRightButton":       "SRV Turret R",
	"DriveSpeedAxis":                  "SRV Speed",
	"HeadlightsBuggyButton":           "SRV Headlights ±",
	"SelectTarget_Buggy":              "SRV Target ahead",
	"SteeringAxis":                    "SRV Steering",
	"ToggleBuggyTurretButton":         "SRV Toggle turret",
	"ToggleDriveAssist":               "SRV Drive Assist",
	"VerticalThrustersButton":         "SRV Vertical Thrusters",
}

// horizonsFunctions are the surface vehicle functions of Elite:Dangerous
// Horizons, they are skipped unless requested.
var horizonsFunctions = map[string]bool{
	"AutoBreakBuggyButton":            true,
	"BuggyPitchAxis":                  true,
	"BuggyPrimaryFireButton":          true,
	"BuggyRollAxisRaw":                true,
	"BuggySecondaryFireButton":        true,
	"BuggyToggleReverseThrottleInput": true,
	"BuggyTurretPitchDownButton":      true,
	"BuggyTurretPitchUpButton":        true,
	"BuggyTurretYawLeftButton":        true,
	"BuggyTurretYawRightButton":       true,
	"DriveSpeedAxis":                  true,
	"HeadlightsBuggyButton":           true,
	"SelectTarget_Buggy":              true,
	"SteeringAxis":                    true,
	"ToggleBuggyTurretButton":         true,
	"ToggleDriveAssist":               true,
	"VerticalThrustersButton":         true,
}
