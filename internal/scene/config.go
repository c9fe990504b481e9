package scene

// Population sizes.
const (
	StarCount        = 280
	InteractiveCount = 10
	DecorativeCount  = 10
	RecordsPerBubble = 10
)

// Progress rates per frame.
const (
	ZoomRate        = 0.05
	DetailRate      = 0.05
	PromptRate      = 0.03
	ZoomDecayRate   = 0.05
	DetailDecayRate = 0.1
	PromptDecayRate = 0.1
)

// Input radii (screen pixels).
const (
	ZoomExitRadius    = 400.0
	DetailPromptRange = 100.0
	DetailExitRadius  = 200.0
	DetailCenterLift  = 50.0
	RecordsVisibleAt  = 0.8
)

// Message screen auto-advance (seconds).
const MessageDuration = 3.0

// Bubble motion.
const (
	BoundaryWidthFactor = 1.2
	RepelDepthRange     = 200.0
	RepelImpulse        = 0.1
	RepelSpeedLimit     = 0.6
	PulseSpeed          = 0.02
	PulseAmount         = 0.04
	WobbleAmount        = 0.08
)

// Depth to visual mapping.
const (
	DepthNear     = 500.0
	DepthFar      = -1500.0
	DepthScaleMin = 0.3
	DepthScaleMax = 1.2
	DepthAlphaMin = 0.25
	DepthAlphaMax = 1.0
)

// Record motion.
const (
	RecordRadius   = 70.0
	RecordSpin     = 0.02
	RecordDropLift = 0.15 // records sit this fraction of the bubble size below centre
)

// Microphone smoothing.
const (
	MicGain   = 7.0
	MicSmooth = 0.08
)

// ECG trace.
const (
	ECGStep           = 3
	ECGBaselineLift   = 120.0
	ECGWaveLengthBase = 520.0
	ECGScroll         = 2.0
	ECGDriftSpeed     = 0.015
	IntroPulseSpeed   = 0.05
)
