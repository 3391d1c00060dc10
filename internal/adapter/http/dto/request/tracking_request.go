package request

import "burgerbude/internal/usecase"

// TrackPingRequest is one driver location report. Lat/Lng are pointers so a
// legitimate 0 coordinate still passes the required binding.
type TrackPingRequest struct {
	Lat      *float64 `json:"lat" binding:"required"`
	Lng      *float64 `json:"lng" binding:"required"`
	Speed    *float64 `json:"speed"`
	Heading  *float64 `json:"heading"`
	OrderIDs []string `json:"orderIds"`
	DriverID string   `json:"driverId"`
	Active   *bool    `json:"active"`
}

func (r TrackPingRequest) ToCommand() usecase.PingCommand {
	return usecase.PingCommand{
		Lat:      *r.Lat,
		Lng:      *r.Lng,
		Speed:    r.Speed,
		Heading:  r.Heading,
		OrderIDs: r.OrderIDs,
		DriverID: r.DriverID,
		Active:   r.Active,
	}
}
