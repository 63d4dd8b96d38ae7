package interfaces

type Mailer interface {
	SendActivationEmail(to string, token string) error
}
