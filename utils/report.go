package utils

import (
	"time"

	"gorm.io/gorm"
)

// ReportTotals aggregates reservations inside one period. Revenue only counts
// ACCEPTED and COMPLETED reservations. An empty period yields all zeros.
type ReportTotals struct {
	TotalReservations int64   `json:"totalReservations"`
	Pending           int64   `json:"pending"`
	Accepted          int64   `json:"accepted"`
	Declined          int64   `json:"declined"`
	Cancelled         int64   `json:"cancelled"`
	Completed         int64   `json:"completed"`
	Revenue           float64 `json:"revenue"`
	AverageGuests     float64 `json:"averageGuests"`
}

type ReportBucket struct {
	Label        string  `json:"label"` // "2025-06-10" for daily, "2025-06" for monthly
	Reservations int64   `json:"reservations"`
	Revenue      float64 `json:"revenue"`
}

type MonthlyReport struct {
	Year   int            `json:"year"`
	Month  int            `json:"month"`
	Totals ReportTotals   `json:"totals"`
	Daily  []ReportBucket `json:"daily"`
}

type YearlyReport struct {
	Year    int            `json:"year"`
	Totals  ReportTotals   `json:"totals"`
	Monthly []ReportBucket `json:"monthly"`
}

func reportTotals(db *gorm.DB, start, end time.Time) (ReportTotals, error) {
	var totals ReportTotals
	err := db.Raw(`
        SELECT COUNT(*) AS total_reservations,
               COUNT(*) FILTER (WHERE status = 'PENDING')   AS pending,
               COUNT(*) FILTER (WHERE status = 'ACCEPTED')  AS accepted,
               COUNT(*) FILTER (WHERE status = 'DECLINED')  AS declined,
               COUNT(*) FILTER (WHERE status = 'CANCELLED') AS cancelled,
               COUNT(*) FILTER (WHERE status = 'COMPLETED') AS completed,
               COALESCE(SUM(total_amount) FILTER (WHERE status IN ('ACCEPTED', 'COMPLETED')), 0) AS revenue,
               COALESCE(AVG(number_of_guests), 0) AS average_guests
        FROM reservations
        WHERE event_date >= ? AND event_date < ?
          AND deleted_at IS NULL
    `, start, end).Scan(&totals).Error
	return totals, err
}

func reportBuckets(db *gorm.DB, start, end time.Time, format string) ([]ReportBucket, error) {
	rows := []ReportBucket{}
	err := db.Raw(`
        SELECT to_char(event_date, ?) AS label,
               COUNT(*) AS reservations,
               COALESCE(SUM(total_amount) FILTER (WHERE status IN ('ACCEPTED', 'COMPLETED')), 0) AS revenue
        FROM reservations
        WHERE event_date >= ? AND event_date < ?
          AND deleted_at IS NULL
        GROUP BY label
        ORDER BY label
    `, format, start, end).Scan(&rows).Error
	return rows, err
}

func GetMonthlyReport(db *gorm.DB, year, month int) (*MonthlyReport, error) {
	start, end := MonthRange(year, month)

	totals, err := reportTotals(db, start, end)
	if err != nil {
		return nil, err
	}
	daily, err := reportBuckets(db, start, end, "YYYY-MM-DD")
	if err != nil {
		return nil, err
	}

	return &MonthlyReport{Year: year, Month: month, Totals: totals, Daily: daily}, nil
}

func GetYearlyReport(db *gorm.DB, year int) (*YearlyReport, error) {
	start, end := YearRange(year)

	totals, err := reportTotals(db, start, end)
	if err != nil {
		return nil, err
	}
	monthly, err := reportBuckets(db, start, end, "YYYY-MM")
	if err != nil {
		return nil, err
	}

	return &YearlyReport{Year: year, Totals: totals, Monthly: monthly}, nil
}
