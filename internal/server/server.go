package server

// Server объединяет HTTP-серверы отдельных областей.
type Server struct {
	DashboardServer
}

func NewServer(
	dashboardServer DashboardServer,
) Server {
	return Server{
		DashboardServer: dashboardServer,
	}
}
