package health

type Input struct{}

type Output struct {
	Body Response
}

type Response struct {
	Status  string `json:"status" example:"OK" doc:"Статус сервиса"`
	Version string `json:"version" example:"1.0.0" doc:"Версия dayadmin"`
	Remote  string `json:"remote" example:"https://cervical.praispranav.com" doc:"Адрес удаленного API"`
}
