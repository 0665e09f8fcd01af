package memory

import "github.com/tutoria-labs/lessonsmith-cli/internal/core/domain"

// Seed returns the embedded reference corpus. The set is small by
// design: seventeen curated records covering the primary-school subject
// areas, each carrying its own citation and suggested activities.
func Seed() []domain.ReferenceDocument {
	return []domain.ReferenceDocument{
		{
			ID:              1,
			SubjectCategory: "Science",
			ApplicableGrades: []string{
				"1", "2", "3",
			},
			Keywords: []string{"animals", "habitat", "wildlife", "forest"},
			Body: "Forests are layered habitats. Woodland animals such as deer, " +
				"foxes, and owls depend on trees for food and shelter, and each " +
				"layer of the forest supports different wildlife.",
			SourceCitation:      "State Science Framework, Life Science strand, unit 3",
			SuggestedActivities: []string{"guided nature walk", "build a habitat diorama", "animal track matching game"},
			ConceptTags:         []string{"ecology", "nature", "observation"},
			PedagogicalLevel:    domain.LevelConcrete,
			CrossLinks:          []string{"Geography"},
		},
		{
			ID:              2,
			SubjectCategory: "Science",
			ApplicableGrades: []string{
				domain.GradeKindergarten, "1", "2",
			},
			Keywords: []string{"plants", "seeds", "growth", "garden"},
			Body: "Plants grow from seeds through predictable stages. Children can " +
				"track germination, sprouting, and flowering over several weeks in " +
				"a classroom garden.",
			SourceCitation:      "State Science Framework, Life Science strand, unit 1",
			SuggestedActivities: []string{"plant bean seeds in clear cups", "keep a growth journal"},
			ConceptTags:         []string{"botany", "life cycle", "observation"},
			PedagogicalLevel:    domain.LevelConcrete,
			CrossLinks:          []string{"Mathematics"},
		},
		{
			ID:              3,
			SubjectCategory: "Science",
			ApplicableGrades: []string{
				domain.GradeKindergarten, "1", "2",
			},
			Keywords: []string{"weather", "seasons", "clouds", "rain"},
			Body: "Weather changes daily while seasons change the year. Recording " +
				"temperature, clouds, and rain builds the habit of systematic " +
				"observation.",
			SourceCitation:      "State Science Framework, Earth Science strand, unit 2",
			SuggestedActivities: []string{"daily weather chart", "dress-the-bear for the season"},
			ConceptTags:         []string{"climate", "seasons", "measurement"},
			PedagogicalLevel:    domain.LevelConcrete,
			CrossLinks:          []string{"Mathematics"},
		},
		{
			ID:              4,
			SubjectCategory: "Science",
			ApplicableGrades: []string{
				"2", "3", "4",
			},
			Keywords: []string{"water", "ocean", "river", "cycle"},
			Body: "Water moves through evaporation, condensation, and precipitation. " +
				"Rivers carry water to the ocean and the cycle begins again, which " +
				"links local streams to global conservation.",
			SourceCitation:      "State Science Framework, Earth Science strand, unit 4",
			SuggestedActivities: []string{"water cycle in a bag experiment", "trace a local river on a map"},
			ConceptTags:         []string{"conservation", "liquid", "states of matter"},
			PedagogicalLevel:    domain.LevelMixed,
			CrossLinks:          []string{"Geography"},
		},
		{
			ID:              5,
			SubjectCategory: "Science",
			ApplicableGrades: []string{
				"3", "4", "5", "6",
			},
			Keywords: []string{"space", "planets", "stars", "astronomy"},
			Body: "The solar system holds eight planets in orbit around one star. " +
				"Introductory astronomy compares planet sizes and distances to " +
				"build a sense of scale.",
			SourceCitation:      "State Science Framework, Space Science strand, unit 6",
			SuggestedActivities: []string{"scale model of planet distances", "moon phase calendar"},
			ConceptTags:         []string{"solar system", "orbit", "scale"},
			PedagogicalLevel:    domain.LevelAbstract,
			CrossLinks:          []string{"Mathematics"},
		},
		{
			ID:              6,
			SubjectCategory: "Science",
			ApplicableGrades: []string{
				domain.GradeKindergarten, "1", "2",
			},
			Keywords: []string{"body", "senses", "health", "nutrition"},
			Body: "The five senses are the body's tools for observation. Simple " +
				"experiments with taste, touch, and sound show how senses work " +
				"together, and connect to healthy habits and nutrition.",
			SourceCitation:      "Health & Science Primary Guide, ch. 2",
			SuggestedActivities: []string{"mystery box touch game", "sorting healthy snacks"},
			ConceptTags:         []string{"anatomy", "exercise", "observation"},
			PedagogicalLevel:    domain.LevelConcrete,
			CrossLinks:          []string{"Physical Education"},
		},
		{
			ID:              7,
			SubjectCategory: "Mathematics",
			ApplicableGrades: []string{
				domain.GradeKindergarten, "1",
			},
			Keywords: []string{"numbers", "counting", "quantity"},
			Body: "Counting connects number words to quantities. Early number sense " +
				"grows through counting collections, comparing groups, and spotting " +
				"patterns in everyday objects.",
			SourceCitation:      "National Numeracy Guidelines, foundation stage",
			SuggestedActivities: []string{"counting bears sort", "number line hop"},
			ConceptTags:         []string{"arithmetic", "patterns", "number sense"},
			PedagogicalLevel:    domain.LevelConcrete,
			CrossLinks:          []string{"Arts"},
		},
		{
			ID:              8,
			SubjectCategory: "Mathematics",
			ApplicableGrades: []string{
				"1", "2", "3",
			},
			Keywords: []string{"addition", "subtraction", "arithmetic"},
			Body: "Addition and subtraction are inverse operations. Story problems " +
				"rooted in the classroom make the operations concrete before " +
				"written arithmetic is introduced.",
			SourceCitation:      "National Numeracy Guidelines, key stage 1",
			SuggestedActivities: []string{"classroom shop role play", "fact family triangles"},
			ConceptTags:         []string{"operations", "problem solving"},
			PedagogicalLevel:    domain.LevelConcrete,
			CrossLinks:          []string{},
		},
		{
			ID:              9,
			SubjectCategory: "Mathematics",
			ApplicableGrades: []string{
				"2", "3", "4",
			},
			Keywords: []string{"shapes", "geometry", "symmetry"},
			Body: "Two-dimensional shapes are classified by sides and angles. " +
				"Symmetry and tiling patterns appear throughout art and nature, " +
				"making geometry a visual subject.",
			SourceCitation:      "National Numeracy Guidelines, key stage 2",
			SuggestedActivities: []string{"shape hunt around school", "mirror symmetry painting"},
			ConceptTags:         []string{"angles", "patterns", "spatial reasoning"},
			PedagogicalLevel:    domain.LevelMixed,
			CrossLinks:          []string{"Arts"},
		},
		{
			ID:              10,
			SubjectCategory: "Mathematics",
			ApplicableGrades: []string{
				"3", "4", "5",
			},
			Keywords: []string{"fractions", "parts", "sharing"},
			Body: "Fractions name equal parts of a whole. Fair-sharing problems " +
				"with food and paper strips ground the notation before abstract " +
				"equivalence rules.",
			SourceCitation:      "National Numeracy Guidelines, key stage 2",
			SuggestedActivities: []string{"paper folding halves and quarters", "fraction pizza craft"},
			ConceptTags:         []string{"proportion", "equivalence"},
			PedagogicalLevel:    domain.LevelAbstract,
			CrossLinks:          []string{},
		},
		{
			ID:              11,
			SubjectCategory: "Social Studies",
			ApplicableGrades: []string{
				domain.GradeKindergarten, "1", "2",
			},
			Keywords: []string{"community", "helpers", "jobs"},
			Body: "Communities work because people take on different jobs. " +
				"Firefighters, nurses, and shopkeepers illustrate how neighbours " +
				"depend on one another.",
			SourceCitation:      "Civics Primary Curriculum, ch. 1",
			SuggestedActivities: []string{"community helper dress-up day", "map your neighbourhood"},
			ConceptTags:         []string{"society", "cooperation"},
			PedagogicalLevel:    domain.LevelConcrete,
			CrossLinks:          []string{"Language Arts"},
		},
		{
			ID:              12,
			SubjectCategory: "Social Studies",
			ApplicableGrades: []string{
				"2", "3", "4",
			},
			Keywords: []string{"maps", "geography", "directions"},
			Body: "Maps represent real places at a smaller scale. Reading symbols, " +
				"compass directions, and simple grids prepares children to " +
				"navigate and to describe where things are.",
			SourceCitation:      "Civics Primary Curriculum, ch. 4",
			SuggestedActivities: []string{"draw a map of the classroom", "treasure hunt with compass directions"},
			ConceptTags:         []string{"spatial reasoning", "scale", "symbols"},
			PedagogicalLevel:    domain.LevelMixed,
			CrossLinks:          []string{"Mathematics"},
		},
		{
			ID:              13,
			SubjectCategory: "Social Studies",
			ApplicableGrades: []string{
				"3", "4", "5", "6",
			},
			Keywords: []string{"history", "past", "timeline", "heritage"},
			Body: "Local history makes the past tangible. Old photographs, family " +
				"stories, and town landmarks anchor a timeline of how the " +
				"community changed across generations.",
			SourceCitation:      "Civics Primary Curriculum, ch. 7",
			SuggestedActivities: []string{"interview a grandparent", "build a classroom timeline"},
			ConceptTags:         []string{"culture", "events", "chronology"},
			PedagogicalLevel:    domain.LevelAbstract,
			CrossLinks:          []string{"Language Arts"},
		},
		{
			ID:              14,
			SubjectCategory: "Language Arts",
			ApplicableGrades: []string{
				domain.GradeKindergarten, "1", "2",
			},
			Keywords: []string{"stories", "reading", "characters"},
			Body: "Stories follow characters through a beginning, middle, and end. " +
				"Retelling with puppets or drawings shows whether young readers " +
				"grasp sequence and character motivation.",
			SourceCitation:      "Literacy Foundations Handbook, part 2",
			SuggestedActivities: []string{"puppet retelling", "draw the story map"},
			ConceptTags:         []string{"comprehension", "narrative", "sequencing"},
			PedagogicalLevel:    domain.LevelConcrete,
			CrossLinks:          []string{"Arts"},
		},
		{
			ID:              15,
			SubjectCategory: "Language Arts",
			ApplicableGrades: []string{
				"2", "3", "4",
			},
			Keywords: []string{"writing", "sentences", "grammar"},
			Body: "Clear writing starts with complete sentences. Shared writing " +
				"sessions model capitalisation, punctuation, and how sentences " +
				"combine into paragraphs.",
			SourceCitation:      "Literacy Foundations Handbook, part 4",
			SuggestedActivities: []string{"sentence surgery fix-ups", "publish a class newsletter"},
			ConceptTags:         []string{"composition", "punctuation"},
			PedagogicalLevel:    domain.LevelMixed,
			CrossLinks:          []string{},
		},
		{
			ID:              16,
			SubjectCategory: "Arts",
			ApplicableGrades: []string{
				domain.GradeKindergarten, "1", "2", "3",
			},
			Keywords: []string{"music", "rhythm", "colour", "painting"},
			Body: "Rhythm and colour are the first vocabularies of the arts. " +
				"Clapping patterns, simple instruments, and colour mixing give " +
				"children direct control over creative materials.",
			SourceCitation:      "Creative Arts Primary Guide, ch. 1",
			SuggestedActivities: []string{"clap-and-echo rhythm circle", "primary colour mixing station"},
			ConceptTags:         []string{"melody", "instruments", "creativity"},
			PedagogicalLevel:    domain.LevelConcrete,
			CrossLinks:          []string{"Mathematics"},
		},
		{
			ID:              17,
			SubjectCategory: "Physical Education",
			ApplicableGrades: []string{
				"1", "2", "3", "4",
			},
			Keywords: []string{"movement", "exercise", "games", "teamwork"},
			Body: "Structured games build coordination and teamwork. Short bursts " +
				"of varied movement suit primary attention spans better than " +
				"long drills, and link directly to healthy habits.",
			SourceCitation:      "Physical Education Primary Syllabus, unit 1",
			SuggestedActivities: []string{"obstacle course relay", "cooperative parachute games"},
			ConceptTags:         []string{"health", "coordination", "cooperation"},
			PedagogicalLevel:    domain.LevelConcrete,
			CrossLinks:          []string{"Science"},
		},
	}
}
