// Command train fits the k-nearest-neighbours classifier on the bundled
// iris data and writes the model artifact plus its metadata.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/martinnorin/iris-api/internal/dataset"
	"github.com/martinnorin/iris-api/internal/model"
)

func main() {
	modelPath := flag.String("model", "knn.gob", "where to write the model artifact")
	metadataPath := flag.String("metadata", "knn_metadata.json", "where to write the model metadata")
	k := flag.Int("k", model.DefaultNeighbors, "number of neighbours to vote")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	iris, err := dataset.Iris()
	if err != nil {
		log.Error("loading iris data failed", "error", err)
		os.Exit(1)
	}

	clf, err := model.NewClassifier(iris.Samples, iris.Labels, *k)
	if err != nil {
		log.Error("fitting classifier failed", "error", err)
		os.Exit(1)
	}

	if err := model.SaveArtifact(*modelPath, clf); err != nil {
		log.Error("writing artifact failed", "path", *modelPath, "error", err)
		os.Exit(1)
	}

	meta := model.Metadata{
		InputWidth: clf.InputWidth(),
		Classes:    dataset.ClassNames,
		Neighbors:  clf.K,
	}
	if err := model.SaveMetadata(*metadataPath, meta); err != nil {
		log.Error("writing metadata failed", "path", *metadataPath, "error", err)
		os.Exit(1)
	}

	log.Info("model trained",
		"samples", len(iris.Samples),
		"classes", meta.Classes,
		"k", clf.K,
		"artifact", *modelPath,
		"metadata", *metadataPath,
	)
}
