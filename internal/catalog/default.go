package catalog

// Default returns the built-in data science readiness questionnaire.
func Default() *Catalog {
	c, err := New(defaultQuestions(), defaultSections(), defaultScores())
	if err != nil {
		panic("catalog: built-in catalog invalid: " + err.Error())
	}
	return c
}

func defaultSections() []SectionInfo {
	return []SectionInfo{
		{
			Section:       SectionPsychometric,
			Title:         "Personality & Interest Assessment",
			Description:   "Understanding your motivations and work preferences",
			EstimatedTime: "8 minutes",
		},
		{
			Section:       SectionTechnical,
			Title:         "Technical Knowledge & Aptitude",
			Description:   "Evaluating your current knowledge and analytical thinking",
			EstimatedTime: "10 minutes",
		},
		{
			Section:       SectionWISCAR,
			Title:         "Career Readiness Framework",
			Description:   "Comprehensive evaluation of your readiness across six key dimensions",
			EstimatedTime: "7 minutes",
		},
	}
}

// defaultScores holds the expert-assigned percentage for each option of the
// choice questions. Index i is the score for option i.
func defaultScores() ScoreTable {
	return ScoreTable{
		"psych_4":  {40, 100, 90, 80, 60},
		"tech_1":   {0, 100, 20, 30, 0},
		"tech_2":   {20, 100, 40, 60, 0},
		"tech_3":   {0, 0, 0, 60, 100},
		"tech_4":   {0, 80, 20, 40, 100},
		"wiscar_3": {20, 100, 40, 30, 50},
		"wiscar_4": {70, 60, 90, 80, 75},
	}
}

func defaultQuestions() []Question {
	agree := []string{"Strongly Disagree", "Strongly Agree"}
	frequency := []string{"Never", "Always"}

	return []Question{
		// Psychometric
		{
			ID: "psych_1", Section: SectionPsychometric, Type: TypeLikert,
			Text:         "I enjoy analyzing patterns and trends in data",
			LikertLabels: agree, Weight: 1.2, Category: "interest",
		},
		{
			ID: "psych_2", Section: SectionPsychometric, Type: TypeLikert,
			Text:         "I prefer working with concrete facts rather than abstract theories",
			LikertLabels: agree, Weight: 1.0, Category: "personality",
		},
		{
			ID: "psych_3", Section: SectionPsychometric, Type: TypeLikert,
			Text:         "I am comfortable working independently for long periods",
			LikertLabels: agree, Weight: 1.1, Category: "work_style",
		},
		{
			ID: "psych_4", Section: SectionPsychometric, Type: TypeMultipleChoice,
			Text: "What motivates you most about a potential career in Data Science?",
			Options: []string{
				"High salary potential",
				"Intellectual challenges and problem-solving",
				"Making data-driven business impact",
				"Working with cutting-edge technology",
				"Job market demand and security",
			},
			Weight: 1.3, Category: "motivation",
		},
		{
			ID: "psych_5", Section: SectionPsychometric, Type: TypeLikert,
			Text:         "I can maintain focus on detailed tasks for hours at a time",
			LikertLabels: frequency, Weight: 1.2, Category: "conscientiousness",
		},

		// Technical & aptitude
		{
			ID: "tech_1", Section: SectionTechnical, Type: TypeMultipleChoice,
			Text: "What is the primary purpose of data cleaning in the data science process?",
			Options: []string{
				"To make data look prettier in visualizations",
				"To remove errors, inconsistencies, and prepare data for analysis",
				"To reduce the size of datasets",
				"To convert all data to the same format",
				"I'm not sure",
			},
			Weight: 1.0, Category: "domain_knowledge",
		},
		{
			ID: "tech_2", Section: SectionTechnical, Type: TypeMultipleChoice,
			Text: "If a dataset has 1000 rows and you want to randomly select 100 for analysis, what is this process called?",
			Options: []string{
				"Data mining",
				"Sampling",
				"Data sorting",
				"Filtering",
				"I'm not sure",
			},
			Weight: 0.8, Category: "statistics",
		},
		{
			ID: "tech_3", Section: SectionTechnical, Type: TypeMultipleChoice,
			Text:    "Which of these is NOT a common programming language used in Data Science?",
			Options: []string{"Python", "R", "SQL", "JavaScript", "COBOL"},
			Weight:  0.6, Category: "tools",
		},
		{
			ID: "tech_4", Section: SectionTechnical, Type: TypeScenario,
			Scenario: "A company notices that their website traffic drops every weekend. They want to understand why.",
			Text:     "What would be your first step in analyzing this problem?",
			Options: []string{
				"Immediately redesign the website",
				"Collect more data about user behavior patterns",
				"Assume it's normal and ignore it",
				"Survey all customers about weekend preferences",
				"Check if this pattern is consistent over time",
			},
			Weight: 1.4, Category: "analytical_thinking",
		},

		// WISCAR
		{
			ID: "wiscar_1", Section: SectionWISCAR, Type: TypeLikert,
			Text:         "When I encounter a difficult problem, I persist until I find a solution",
			LikertLabels: frequency, Weight: 1.2, Category: "will",
		},
		{
			ID: "wiscar_2", Section: SectionWISCAR, Type: TypeLikert,
			Text:         "I actively seek out opportunities to learn new technical skills",
			LikertLabels: frequency, Weight: 1.1, Category: "ability_to_learn",
		},
		{
			ID: "wiscar_3", Section: SectionWISCAR, Type: TypeScenario,
			Scenario: "You're working on a machine learning model that's not performing well. Your manager is pressuring you for results.",
			Text:     "What would you most likely do?",
			Options: []string{
				"Submit the current model and hope for the best",
				"Systematically test different approaches and document findings",
				"Ask a colleague to take over the project",
				"Recommend abandoning the project",
				"Present the current results as \"preliminary findings\"",
			},
			Weight: 1.5, Category: "real_world",
		},
		{
			ID: "wiscar_4", Section: SectionWISCAR, Type: TypeMultipleChoice,
			Text: "How do you typically approach learning a new concept or tool?",
			Options: []string{
				"Watch tutorials and follow along",
				"Read documentation thoroughly first",
				"Jump in and experiment hands-on",
				"Find a mentor or expert to guide me",
				"Take a structured course or class",
			},
			Weight: 1.0, Category: "learning_style",
		},
		{
			ID: "wiscar_5", Section: SectionWISCAR, Type: TypeLikert,
			Text:         "I can quickly identify patterns in complex, ambiguous information",
			LikertLabels: []string{"Very Difficult", "Very Easy"},
			Weight:       1.3, Category: "cognitive",
		},
	}
}
