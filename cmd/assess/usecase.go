package main

import (
	"mindcare-service/internal/app/config"
	"mindcare-service/internal/app/contracts"
	"mindcare-service/internal/app/services/core/assessments"
	"mindcare-service/internal/app/services/core/crisis"

	"go.uber.org/zap"
)

func newAssessmentUsecase(f *rootFlags) (contracts.AssessmentUsecase, *zap.Logger, error) {
	path := f.definitionsPath
	if path == "" {
		path = config.NewInternalConfig().Assessment.DefinitionsPath
	}

	log := zap.NewNop()
	if f.verbose {
		var err error
		log, err = zap.NewDevelopment()
		if err != nil {
			return nil, nil, err
		}
	}

	repository := assessments.NewAssessmentFileRepository(path, log)
	return assessments.NewAssessmentUsecase(repository, crisis.NewCrisisUsecase(), log), log, nil
}
