package replay

// Version is the replay file format version written by the recorder
const Version = "2.0"

// FrameInput records one simulation tick
type FrameInput struct {
	F  int      `json:"f"`           // Frame number
	DT float64  `json:"dt"`          // Delta time in seconds
	A  []string `json:"a,omitempty"` // Actions triggered this frame
}

// FinalState is the ball and paddle position at the end of a recording
type FinalState struct {
	BallX   float64 `json:"ballX"`
	BallY   float64 `json:"ballY"`
	PaddleX float64 `json:"paddleX"`
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
	// Final is filled when the recording is saved and lets a replay be verified
	Final *FinalState `json:"final,omitempty"`
}
