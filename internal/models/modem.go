package models

// ModemSendRequest is posted to a modem endpoint.
type ModemSendRequest struct {
	To             string   `json:"to"`
	Parts          []string `json:"parts"`
	SubscriptionID int      `json:"subscription_id"`
	Reference      string   `json:"reference"`
}

type ModemSendResponse struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
}

type ModemStatusResponse struct {
	Active  bool   `json:"active"`
	Carrier string `json:"carrier,omitempty"`
	Signal  int    `json:"signal,omitempty"`
}

// DeliveryReport is posted back by a modem once the network confirms delivery.
type DeliveryReport struct {
	IDSms     int64 `json:"id_sms"`
	Delivered bool  `json:"delivered"`
}
