package curriculum

// DefaultTopicTable returns the standard grade-to-topic table.
// A fresh map is returned on every call.
func DefaultTopicTable() map[GradeLevel][]MathTopic {
	return map[GradeLevel][]MathTopic{
		GradeK:  {TopicCounting, TopicNumberRecognition, TopicShapes, TopicPatterns},
		Grade1:  {TopicCounting, TopicBasicAddition, TopicBasicSubtraction, TopicShapes, TopicMeasurement},
		Grade2:  {TopicBasicAddition, TopicBasicSubtraction, TopicTime, TopicMoney, TopicMeasurement},
		Grade3:  {TopicMultiplication, TopicDivision, TopicFractions, TopicGeometry, TopicWordProblems},
		Grade4:  {TopicMultiplication, TopicDivision, TopicFractions, TopicDecimals, TopicDataGraphs},
		Grade5:  {TopicFractions, TopicDecimals, TopicGeometry, TopicDataGraphs, TopicWordProblems},
		Grade6:  {TopicPreAlgebra, TopicRatios, TopicProportions, TopicStatistics, TopicCoordinateGeometry},
		Grade7:  {TopicPreAlgebra, TopicProportions, TopicStatistics, TopicProbability, TopicAlgebraicThinking},
		Grade8:  {TopicAlgebra1, TopicCoordinateGeometry, TopicStatistics, TopicProbability, TopicAlgebraicThinking},
		Grade9:  {TopicAlgebra1, TopicGeometryAdvanced},
		Grade10: {TopicAlgebra2, TopicGeometryAdvanced},
		Grade11: {TopicAlgebra2, TopicTrigonometry, TopicPreCalculus},
		Grade12: {TopicPreCalculus, TopicCalculus, TopicStatistics},
	}
}
