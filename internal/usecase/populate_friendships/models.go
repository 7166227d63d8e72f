package populate_friendships

// Response итог перестроения графа дружбы
type Response struct {
	// Processed количество попыток создать пару; включает уже существующие пары,
	// поэтому это приблизительная диагностика, а не число новых связей
	Processed int
	// Created точное количество вставленных направленных ребер
	Created int
	// Failed пары, которые не удалось обработать
	Failed int

	CompanionRecords int
	AcceptedRequests int
	GroupPairs       int
}
