package experian

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"crednorm/experian-report/internal/fileutils"
)

// ConvertToJSON parses an Experian credit report XML file and writes the
// normalized report as indented JSON to jsonFile.
func ConvertToJSON(xmlFile string, jsonFile string) error {
	log.WithFields(logrus.Fields{
		"xmlFile":  xmlFile,
		"jsonFile": jsonFile,
	}).Info("Converting Experian XML to JSON")

	if !fileutils.FileExists(xmlFile) {
		return fmt.Errorf("input file does not exist: %s", xmlFile)
	}

	report, err := ParseFile(xmlFile)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding report as JSON: %w", err)
	}

	if err := fileutils.WriteFile(jsonFile, data, 0644); err != nil {
		return fmt.Errorf("error writing JSON file: %w", err)
	}

	log.WithField("jsonFile", jsonFile).Info("Successfully converted XML to JSON")
	return nil
}

// BatchConvert converts all XML files in inputDir and writes one JSON file
// per report to outputDir. Files that fail to parse are skipped with a
// warning. It returns the number of files converted.
func BatchConvert(inputDir string, outputDir string) (int, error) {
	log.WithFields(logrus.Fields{
		"inputDir":  inputDir,
		"outputDir": outputDir,
	}).Info("Starting batch conversion")

	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return 0, fmt.Errorf("error creating output directory: %w", err)
	}

	files, err := fileutils.ListFilesWithExtension(inputDir, ".xml")
	if err != nil {
		return 0, fmt.Errorf("error listing XML files: %w", err)
	}

	processed := 0
	for _, file := range files {
		base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		jsonFile := filepath.Join(outputDir, base+".json")

		if err := ConvertToJSON(file, jsonFile); err != nil {
			log.WithFields(logrus.Fields{
				"file":  file,
				"error": err,
			}).Warning("Skipping file due to conversion error")
			continue
		}
		processed++
	}

	log.WithField("processed", processed).Info("Batch conversion completed")
	return processed, nil
}
