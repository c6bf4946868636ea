package mapper

import (
	"encoding/json"
	"fmt"

	"blk2json/internal/converter/models"
)

// Encode сериализует коллекцию в JSON с отступом в два пробела.
func Encode(shapes *models.Collection) ([]byte, error) {
	if shapes == nil {
		shapes = models.NewCollection()
	}
	data, err := json.MarshalIndent(shapes, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return data, nil
}
