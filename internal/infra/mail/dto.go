package mail

type PartialUpdateAlertData struct {
	ContactID int64
	Updated   []string
	Cause     string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       []string
}
