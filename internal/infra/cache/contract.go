package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

const (
	kindHours   = "business_hours"
	kindOffDays = "off_days"

	keyHours   = "hours"
	keyVersion = "version"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics счётчик попаданий в кэш (nil допустим)
type Metrics interface {
	ObserveCache(kind string, hit bool)
}

// Записи хранятся под номером поколения. Invalidate увеличивает поколение,
// поэтому запись, прочитанная из БД до изменения и сохранённая после него,
// попадает в старое поколение и больше не читается.
func versionedKey(version uint64, name string) string {
	return fmt.Sprintf("v%d:%s", version, name)
}

func hoursKey(version uint64) string {
	return versionedKey(version, keyHours)
}

func offDaysKey(version uint64, from, to time.Time) string {
	return versionedKey(version, fmt.Sprintf("off_days:%s:%s", from.Format(domain.DateFormat), to.Format(domain.DateFormat)))
}

// Значения хранятся в JSON: так LRU не отдаёт наружу общие слайсы,
// а Redis и LRU ведут себя одинаково.
func encode(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func decodeHours(data []byte) ([]domain.BusinessHours, error) {
	var hours []domain.BusinessHours
	if err := json.Unmarshal(data, &hours); err != nil {
		return nil, err
	}
	return hours, nil
}

func decodeOffDays(data []byte) ([]domain.OffDay, error) {
	var offDays []domain.OffDay
	if err := json.Unmarshal(data, &offDays); err != nil {
		return nil, err
	}
	return offDays, nil
}

type noopMetrics struct{}

func (noopMetrics) ObserveCache(string, bool) {}

func metricsOrNoop(m Metrics) Metrics {
	if m == nil {
		return noopMetrics{}
	}
	return m
}
