package faceapi

// DefaultListTop is the page size used when ListOptions.Top is zero.
const DefaultListTop = 1000

// MaxIdentifyBatch is the most face ids the service accepts per identify call.
const MaxIdentifyBatch = 10

// Training status values reported by the service.
const (
	TrainingNotStarted = "notstarted"
	TrainingRunning    = "running"
	TrainingSucceeded  = "succeeded"
	TrainingFailed     = "failed"
)

// PersonGroup represents a person group
type PersonGroup struct {
	PersonGroupID string `json:"personGroupId"`
	Name          string `json:"name"`
	UserData      string `json:"userData,omitempty"`
}

// PersonGroupUpdate holds the fields sent by UpdatePersonGroup. Both are
// always sent; an empty value is sent as "".
type PersonGroupUpdate struct {
	Name     string `json:"name"`
	UserData string `json:"userData"`
}

// TrainingStatus is the state of the asynchronous training job of a person group
type TrainingStatus struct {
	Status                 string `json:"status"`
	CreatedDateTime        string `json:"createdDateTime"`
	LastActionDateTime     string `json:"lastActionDateTime,omitempty"`
	LastSuccessfulTraining string `json:"lastSuccessfulTrainingDateTime,omitempty"`
	Message                string `json:"message,omitempty"`
}

// Person represents an enrolled person in a person group
type Person struct {
	PersonID         string   `json:"personId"`
	Name             string   `json:"name"`
	UserData         string   `json:"userData,omitempty"`
	PersistedFaceIDs []string `json:"persistedFaceIds"`
}

// PersonUpdate holds the fields sent by UpdatePerson.
type PersonUpdate struct {
	Name     string `json:"name"`
	UserData string `json:"userData"`
}

// FaceRectangle locates a face in the source image, in pixels
type FaceRectangle struct {
	Top    int `json:"top"`
	Left   int `json:"left"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Area returns the rectangle area in square pixels.
func (r FaceRectangle) Area() int {
	return r.Width * r.Height
}

// DetectedFace is one face found by detection. FaceID is transient and only
// valid for the server-side retention window.
type DetectedFace struct {
	FaceID        string        `json:"faceId"`
	FaceRectangle FaceRectangle `json:"faceRectangle"`
}

// Candidate is a person matched by identification
type Candidate struct {
	PersonID   string  `json:"personId"`
	Confidence float64 `json:"confidence"`
}

// IdentifyResult holds the candidates for one query face
type IdentifyResult struct {
	FaceID     string      `json:"faceId"`
	Candidates []Candidate `json:"candidates"`
}

// ListOptions pages list calls. A zero Top means DefaultListTop.
type ListOptions struct {
	Start string
	Top   int
}

func (o ListOptions) top() int {
	if o.Top <= 0 {
		return DefaultListTop
	}
	return o.Top
}

// IdentifyOptions tunes identification. Nil ConfidenceThreshold and zero
// MaxCandidates leave the service defaults in place.
type IdentifyOptions struct {
	ConfidenceThreshold *float64
	MaxCandidates       int
}

// Threshold returns a pointer suitable for IdentifyOptions.ConfidenceThreshold.
func Threshold(v float64) *float64 {
	return &v
}

type nameUserData struct {
	Name     string `json:"name"`
	UserData string `json:"userData,omitempty"`
}

type imageURLRequest struct {
	URL string `json:"url"`
}

type identifyRequest struct {
	PersonGroupID              string   `json:"personGroupId"`
	FaceIDs                    []string `json:"faceIds"`
	ConfidenceThreshold        *float64 `json:"confidenceThreshold,omitempty"`
	MaxNumOfCandidatesReturned int      `json:"maxNumOfCandidatesReturned,omitempty"`
}

type createPersonResponse struct {
	PersonID string `json:"personId"`
}

type addFaceResponse struct {
	PersistedFaceID string `json:"persistedFaceId"`
}
