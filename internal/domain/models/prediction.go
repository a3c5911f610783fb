package models

// Prediction represents a single machine-generated price forecast for a
// trading pair, as persisted by the prediction pipeline.
//
// Fields:
//   - Pair: trading pair identifier (e.g., "BTCUSDT").
//   - PredictedPrice: forecast price.
//   - TsMs: when the prediction was generated, in milliseconds since epoch.
//   - PredictedTsMs: the future instant the price is predicted for, in ms.
//   - ModelName / ModelVersion: identifiers of the producing model.
//
// Rows are written by the external ML pipeline; this service only reads them.
//
// swagger:model Prediction
type Prediction struct {
	Pair           string  `json:"pair" example:"BTCUSDT"`
	PredictedPrice float64 `json:"predicted_price" example:"65001.23"`
	TsMs           int64   `json:"ts_ms" example:"1717000000000"`
	PredictedTsMs  int64   `json:"predicted_ts_ms" example:"1717000300000"`
	ModelName      string  `json:"model_name" example:"xgboost"`
	ModelVersion   string  `json:"model_version" example:"1.4.0"`
}
