package questionbank

import (
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
)

// LoadYAML reads a question bank override from a YAML file. The file uses
// the same shape as the compiled bank and must pass the same validation.
func LoadYAML(path string) (*model.QuestionBank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "questionbank: read %s", path)
	}

	var b model.QuestionBank
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, eris.Wrapf(err, "questionbank: parse %s", path)
	}

	finalize(&b)
	if err := Validate(&b); err != nil {
		return nil, err
	}

	zap.L().Info("questionbank: loaded override",
		zap.String("path", path),
		zap.Int("sections", len(b.Sections)),
		zap.Int("questions", b.TotalQuestions),
	)
	return &b, nil
}
