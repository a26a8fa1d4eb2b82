package models

// Wire types of the remote SMS server. Field names are fixed by the server.

type SmsPendingResponse struct {
	IDSms              int64  `json:"idSms"`
	ContenuSMS         string `json:"contenuSMS"`
	NumeroDestinataire string `json:"numeroDestinataire"`
	Statut             int    `json:"statut"`
}

// ToPendingMessage drops the server status; a fetched message starts with clean UI flags.
func (r SmsPendingResponse) ToPendingMessage() PendingMessage {
	return PendingMessage{
		ID:        r.IDSms,
		Recipient: r.NumeroDestinataire,
		Message:   r.ContenuSMS,
	}
}

type RecentMessageResponse struct {
	IDSms              int64  `json:"idSms"`
	NumeroDestinataire string `json:"numeroDestinataire"`
	ContenuSMS         string `json:"contenuSMS"`
	Date               string `json:"date"`
	Time               string `json:"time"`
	Status             string `json:"status"`
}

func (r RecentMessageResponse) ToRecentMessage() RecentMessage {
	return RecentMessage{
		ID:        r.IDSms,
		Recipient: r.NumeroDestinataire,
		Message:   r.ContenuSMS,
		Time:      r.Time,
		Status:    ParseMessageStatus(r.Status),
	}
}

type APIResponse struct {
	OK       bool `json:"ok"`
	Affected int  `json:"affected"`
}

type StatsResponse struct {
	Total   int     `json:"total"`
	Sent    int     `json:"sent"`
	Failed  int     `json:"failed"`
	Pending int     `json:"pending"`
	Period  *string `json:"period,omitempty"`
}

type PeriodStats struct {
	Total   int `json:"total"`
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Pending int `json:"pending"`
}

func (p PeriodStats) ToStatsData() StatsData {
	return StatsData{Total: p.Total, Sent: p.Sent, Failed: p.Failed, Pending: p.Pending}
}

type AllStatsResponse struct {
	Daily   PeriodStats `json:"daily"`
	Weekly  PeriodStats `json:"weekly"`
	Monthly PeriodStats `json:"monthly"`
}

// SmsRecord is the full server-side row.
type SmsRecord struct {
	IDSms                  int64   `json:"idSms"`
	ContenuSMS             *string `json:"contenuSMS"`
	DateBilan              *string `json:"dateBilan"`
	DateEnregistrementSms  string  `json:"dateEnregistrementSms"`
	DateEnvoiSms           string  `json:"dateEnvoiSms"`
	HeureEnregistrementSms string  `json:"heureEnregistrementSms"`
	HeureEnvoiSms          string  `json:"heureEnvoiSms"`
	NumeroDestinataire     string  `json:"numeroDestinataire"`
	NumeroExpediteur       string  `json:"numeroExpediteur"`
	Statut                 *int    `json:"statut"`
}
