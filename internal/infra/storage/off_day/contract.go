package off_day

import "github.com/m04kA/SMC-SalonAvailability/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
