package performance

type MetricsResponse struct {
	StaffID               string  `json:"staffId"`
	PeriodStart           string  `json:"periodStart"`
	PeriodEnd             string  `json:"periodEnd"`
	TotalAppointments     int     `json:"totalAppointments"`
	CompletedAppointments int     `json:"completedAppointments"`
	CancelledAppointments int     `json:"cancelledAppointments"`
	NoShowAppointments    int     `json:"noShowAppointments"`
	CompletionRate        float64 `json:"completionRate"`
	AverageRating         float64 `json:"averageRating"`
	TotalEarnings         float64 `json:"totalEarnings"`
	CommissionEarnings    float64 `json:"commissionEarnings"`
	TipEarnings           float64 `json:"tipEarnings"`
}

func NewMetricsResponse(m Metrics) MetricsResponse {
	return MetricsResponse{
		StaffID:               m.StaffID,
		PeriodStart:           m.PeriodStart.Format("2006-01-02"),
		PeriodEnd:             m.PeriodEnd.Format("2006-01-02"),
		TotalAppointments:     m.TotalAppointments,
		CompletedAppointments: m.CompletedAppointments,
		CancelledAppointments: m.CancelledAppointments,
		NoShowAppointments:    m.NoShowAppointments,
		CompletionRate:        m.CompletionRate,
		AverageRating:         m.AverageRating,
		TotalEarnings:         m.TotalEarnings,
		CommissionEarnings:    m.CommissionEarnings,
		TipEarnings:           m.TipEarnings,
	}
}
