package assessments

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mindcare-service/internal/app/contracts"
	"mindcare-service/internal/app/models"
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/exceptions"
	"mindcare-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// assessmentFileRepository reads the definitions file on every lookup, so
// edits to the file are picked up on the next page view.
type assessmentFileRepository struct {
	Path string
	Log  *zap.Logger
}

func NewAssessmentFileRepository(path string, logger *zap.Logger) contracts.AssessmentDefinitionRepository {
	return &assessmentFileRepository{
		Path: path,
		Log:  logger,
	}
}

func (repo *assessmentFileRepository) FindAll(ctx context.Context) ([]models.Definition, error) {
	definitions, err := repo.load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Definition, 0, len(definitions))
	for _, instrument := range models.Instruments() {
		if definition, ok := definitions[instrument]; ok {
			result = append(result, definition)
		}
	}
	return result, nil
}

func (repo *assessmentFileRepository) FindByInstrument(ctx context.Context, instrument models.Instrument) (*models.Definition, error) {
	definitions, err := repo.load(ctx)
	if err != nil {
		return nil, err
	}

	definition, ok := definitions[instrument]
	if !ok {
		return nil, exceptions.ErrInstrumentNotDefined(fmt.Errorf("missing from %s", repo.Path), instrument.Name())
	}
	return &definition, nil
}

func (repo *assessmentFileRepository) load(ctx context.Context) (map[models.Instrument]models.Definition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(repo.Path)
	if err != nil {
		repo.Log.Error("assessmentFileRepository.load error reading definitions file",
			zap.String(constvars.LoggingDefinitionsPathKey, repo.Path),
			zap.Error(err),
		)
		return nil, exceptions.ErrDefinitionsUnreadable(err, repo.Path)
	}

	entries, err := decodeDefinitions(repo.Path, raw)
	if err != nil {
		repo.Log.Error("assessmentFileRepository.load error decoding definitions file",
			zap.String(constvars.LoggingDefinitionsPathKey, repo.Path),
			zap.Error(err),
		)
		return nil, err
	}

	definitions, err := ParseDefinitions(entries)
	if err != nil {
		repo.Log.Error("assessmentFileRepository.load invalid definitions file",
			zap.String(constvars.LoggingDefinitionsPathKey, repo.Path),
			zap.Error(err),
		)
		return nil, exceptions.ErrDefinitionsMalformed(err, repo.Path)
	}

	repo.Log.Debug("assessmentFileRepository.load loaded definitions",
		zap.String(constvars.LoggingDefinitionsPathKey, repo.Path),
		zap.Int(constvars.LoggingAssessmentCountKey, len(definitions)),
	)
	return definitions, nil
}

func decodeDefinitions(path string, raw []byte) (map[string][]string, error) {
	entries := make(map[string][]string)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := utils.ValidateUniqueKeys(raw); err != nil {
			return nil, exceptions.ErrDefinitionsMalformed(err, path)
		}
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, exceptions.ErrDefinitionsMalformed(err, path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &entries); err != nil {
			return nil, exceptions.ErrDefinitionsMalformed(err, path)
		}
	default:
		return nil, exceptions.ErrDefinitionsUnsupportedFormat(errors.New("expected .json, .yaml or .yml"), path)
	}
	return entries, nil
}

// ParseDefinitions maps raw "instrument name -> questions" entries onto the
// known instruments. Unknown names, two keys naming the same instrument and
// empty or blank questions are rejected. A key repeated verbatim is caught
// while decoding, before the entries reach this map.
func ParseDefinitions(entries map[string][]string) (map[models.Instrument]models.Definition, error) {
	definitions := make(map[models.Instrument]models.Definition, len(entries))
	for name, questions := range entries {
		instrument, err := models.ParseInstrument(name)
		if err != nil {
			return nil, err
		}
		if _, exists := definitions[instrument]; exists {
			return nil, fmt.Errorf("instrument %s is defined more than once", instrument.Name())
		}
		if len(questions) == 0 {
			return nil, fmt.Errorf("instrument %s has no questions", instrument.Name())
		}

		cleaned := make([]string, len(questions))
		for i, question := range questions {
			cleaned[i] = strings.TrimSpace(question)
			if cleaned[i] == "" {
				return nil, fmt.Errorf("instrument %s question %d is blank", instrument.Name(), i+1)
			}
		}

		definitions[instrument] = models.Definition{
			Instrument: instrument,
			Questions:  cleaned,
		}
	}
	return definitions, nil
}
