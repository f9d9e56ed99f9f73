package experian

import (
	"fmt"
	"os"

	"gopkg.in/xmlpath.v2"
)

// ValidateFormat checks if a file looks like an Experian bureau report.
// It uses xmlpath to probe for the known report root elements without
// running the full transformation.
func ValidateFormat(xmlFile string) (bool, error) {
	log.WithField("file", xmlFile).Info("Validating bureau report format")

	f, err := os.Open(xmlFile)
	if err != nil {
		log.WithError(err).Error("Failed to open XML file")
		return false, fmt.Errorf("error opening XML file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	root, err := xmlpath.Parse(f)
	if err != nil {
		log.WithError(err).Debug("File is not valid XML")
		return false, nil
	}

	for _, candidate := range rootCandidates {
		path := xmlpath.MustCompile("//" + candidate)
		if _, ok := path.String(root); ok {
			log.WithField("file", xmlFile).Info("File is a valid bureau report")
			return true, nil
		}
	}

	log.Debug("No known report root element found, not a bureau report")
	return false, nil
}
