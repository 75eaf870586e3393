package service

import (
	"encoding/gob"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	randomforest "github.com/malaschitz/randomForest"

	"github.com/kulsum-786/student-disengagement-prediction/internals/features/prediction/model"
)

const (
	trainTrees = 200
	trainSeed  = 42
)

// ModelInfo describes the trained bundle for the dashboard's model panel.
type ModelInfo struct {
	Trees           int            `json:"trees"`
	Accuracy        float64        `json:"accuracy"`
	TrainedAt       time.Time      `json:"trained_at"`
	TrainingRows    int            `json:"training_rows"`
	VocabularySizes map[string]int `json:"vocabulary_sizes"`
}

// bundle is the opaque model artifact written to MODEL_PATH: the encoder
// tables, the encoded design matrix and training metadata, gob-encoded in
// one file. The forest itself is regrown from the stored matrix at load;
// its internal tree layout is not part of the artifact format.
type bundle struct {
	Encoders Encoders
	X        [][]float64
	Class    []int
	Trees    int
	Info     ModelInfo
}

// LoadOrTrain loads the model artifact if present, otherwise trains from the
// dataset and writes the artifact. The dataset is always read: its rows back
// the student roster regardless of where the model came from.
func LoadOrTrain(dataPath, modelPath string) (*Engine, error) {
	records, err := ReadDataset(dataPath)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	if _, err := os.Stat(modelPath); err == nil {
		eng, err := loadBundle(modelPath, records)
		if err == nil {
			log.Printf("[INFO] model loaded from %s (accuracy %.2f%%)", modelPath, eng.info.Accuracy)
			return eng, nil
		}
		// A stale or corrupt artifact falls back to retraining.
		log.Printf("[WARN] model artifact %s unreadable (%v), retraining", modelPath, err)
	}

	log.Printf("[INFO] training model from %s (%d rows)...", dataPath, len(records))
	eng, err := Train(records)
	if err != nil {
		return nil, err
	}
	log.Printf("[SUCCESS] model trained, accuracy %.2f%%", eng.info.Accuracy)
	if err := eng.saveBundle(modelPath); err != nil {
		// The in-memory model still serves; only the next start retrains.
		log.Printf("[WARN] could not save model artifact to %s: %v", modelPath, err)
	} else {
		log.Printf("[INFO] model artifact saved to %s", modelPath)
	}
	return eng, nil
}

// Train fits the encoder tables and the random forest over the given rows.
// The shuffle split is seeded, so training is reproducible for the same data.
func Train(records []model.StudentRecord) (*Engine, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("train: empty dataset")
	}

	encoders := FitEncoders(records)

	rng := rand.New(rand.NewSource(trainSeed))
	perm := rng.Perm(len(records))

	// 80/20 split; tiny datasets train and evaluate on everything.
	cut := len(records) - len(records)/5
	trainIdx, testIdx := perm[:cut], perm[cut:]
	if len(testIdx) == 0 {
		testIdx = trainIdx
	}

	x := make([][]float64, 0, len(trainIdx))
	y := make([]int, 0, len(trainIdx))
	for _, i := range trainIdx {
		x = append(x, encoders.Features(records[i]))
		y = append(y, records[i].Dropout)
	}

	forest := randomforest.Forest{}
	forest.Data = randomforest.ForestData{X: x, Class: y}
	forest.Train(trainTrees)

	correct := 0
	for _, i := range testIdx {
		votes := forest.Vote(encoders.Features(records[i]))
		pred := 0
		if len(votes) > 1 && votes[1] >= 0.5 {
			pred = 1
		}
		if pred == records[i].Dropout {
			correct++
		}
	}

	info := ModelInfo{
		Trees:           trainTrees,
		Accuracy:        float64(correct) / float64(len(testIdx)) * 100,
		TrainedAt:       time.Now(),
		TrainingRows:    len(trainIdx),
		VocabularySizes: make(map[string]int, len(CategoricalColumns)),
	}
	for _, col := range CategoricalColumns {
		info.VocabularySizes[col] = len(encoders[col])
	}

	return &Engine{
		forest:   &forest,
		encoders: encoders,
		roster:   records,
		info:     info,
	}, nil
}

func loadBundle(path string, roster []model.StudentRecord) (*Engine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var b bundle
	if err := gob.NewDecoder(f).Decode(&b); err != nil {
		return nil, err
	}
	if len(b.X) == 0 || len(b.X) != len(b.Class) {
		return nil, fmt.Errorf("artifact %s: malformed design matrix", path)
	}

	forest := randomforest.Forest{}
	forest.Data = randomforest.ForestData{X: b.X, Class: b.Class}
	forest.Train(b.Trees)

	return &Engine{
		forest:   &forest,
		encoders: b.Encoders,
		roster:   roster,
		info:     b.Info,
	}, nil
}

func (e *Engine) saveBundle(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	b := bundle{
		Encoders: e.encoders,
		X:        e.forest.Data.X,
		Class:    e.forest.Data.Class,
		Trees:    e.info.Trees,
		Info:     e.info,
	}
	return gob.NewEncoder(f).Encode(&b)
}
