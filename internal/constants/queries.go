package constants

const (
	CountUnsoldAircraft = `
	SELECT COUNT(*) FROM aeronave WHERE vendido = FALSE
	`

	CountAircraftByDecade = `
	SELECT (ano / 10) * 10 AS decade, COUNT(*) AS total
	FROM aeronave
	GROUP BY (ano / 10) * 10
	ORDER BY decade
	`
)
