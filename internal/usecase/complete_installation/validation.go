package complete_installation

import (
	"strconv"
	"strings"

	"github.com/m04kA/SMC-FieldService/internal/domain"
)

// validateRequest проверяет доказательства выполнения до любых записей
// Возвращает нормализованную строку GPS "lat,long"
func validateRequest(req *Request) (string, error) {
	if req.InstallationID <= 0 {
		return "", domain.NewFieldError("instalacion_id", "installation id must be positive")
	}

	if req.EquipmentID <= 0 {
		return "", domain.NewFieldError("equipo_id", "equipment must be selected")
	}

	photos := 0
	for _, p := range req.Photos {
		if strings.TrimSpace(p) != "" {
			photos++
		}
	}
	if photos == 0 {
		return "", domain.NewFieldError("fotos", "at least one photo is required")
	}
	if photos > domain.MaxPhotos {
		return "", domain.NewFieldError("fotos", "too many photos")
	}

	lat, err := parseCoordinate("latitud", req.Latitude, 90)
	if err != nil {
		return "", err
	}
	long, err := parseCoordinate("longitud", req.Longitude, 180)
	if err != nil {
		return "", err
	}

	return lat + "," + long, nil
}

func parseCoordinate(field, raw string, limit float64) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", domain.NewFieldError(field, "coordinate is required")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", domain.NewFieldError(field, "coordinate must be numeric")
	}
	// NaN не проходит ни одно сравнение
	if !(v >= -limit && v <= limit) {
		return "", domain.NewFieldError(field, "coordinate is out of range")
	}
	return raw, nil
}

func nonEmptyPhotos(photos []string) []string {
	out := make([]string, 0, len(photos))
	for _, p := range photos {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
