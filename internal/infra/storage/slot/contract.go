package slot

import (
	"github.com/m04kA/SMC-HallBookingService/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
