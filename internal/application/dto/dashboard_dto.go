package dto

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Las entradas/salidas mensuales cuentan cantidades de movimientos del mes
// calendario en curso (reloj de pared al momento de la consulta).
type DashboardSummaryDTO struct {
	TotalProducts  int `json:"totalProducts"`
	TotalStock     int `json:"totalStock"`
	MonthlyEntries int `json:"monthlyEntries"`
	MonthlyExits   int `json:"monthlyExits"`

	// Hasta 5 productos con stock <= minStock, en orden natural de colección
	// (no por severidad).
	LowStock []LowStockDTO `json:"lowStock"`

	// Los 5 movimientos más recientes (cabeza de la lista).
	RecentMovements []MovementResponse `json:"recentMovements"`
}

// LowStockDTO producto bajo mínimo para el widget del dashboard.
type LowStockDTO struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
	MinStock  int    `json:"minStock"`
}
