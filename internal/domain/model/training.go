package model

// TrainingSpec holds the hyperparameters of a detection training run.
type TrainingSpec struct {
	Weights   string
	DataPath  string
	Epochs    int
	ImageSize int
	Batch     int
	RunName   string
}
