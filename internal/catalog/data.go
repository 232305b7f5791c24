package catalog

import "strings"

var books = []Book{
	{
		Slug:           "kcse-mathematics-form-4-octopus-revision",
		Title:          "KCSE Mathematics Revision · Form 4 (Octopus Method)",
		Subject:        "Mathematics",
		Form:           "4",
		Price:          850,
		Description:    "Topic–by–topic Form 4 maths revision with worked KCSE-style questions, model answers, and visual summaries for each subtopic.",
		CoverImagePath: "/covers/math-form-4.jpg",
	},
	{
		Slug:           "kcse-chemistry-form-3-visual-notes",
		Title:          "KCSE Chemistry Past Papers · Form 3 Visual Notes",
		Subject:        "Chemistry",
		Form:           "3",
		Price:          920,
		Description:    "Structured Form 3 chemistry notes built from real KCSE past papers, focusing on experiments, equations, and common traps.",
		CoverImagePath: "/covers/chem-form-3.jpg",
	},
	{
		Slug:           "kcse-english-form-2-comprehension-practice",
		Title:          "KCSE English Comprehension · Form 2 Practice",
		Subject:        "English",
		Form:           "2",
		Price:          780,
		Description:    "Reading passages, guided questions, and marking-scheme style notes to build Form 2 comprehension confidence.",
		CoverImagePath: "/covers/eng-form-2.jpg",
	},
	{
		Slug:           "kcse-biology-form-4-diagram-atlas",
		Title:          "KCSE Biology Diagrams · Form 4 Revision Atlas",
		Subject:        "Biology",
		Form:           "4",
		Price:          990,
		Description:    "An annotated atlas of must-know Form 4 biology diagrams, processes, and labelled illustrations for last-minute revision.",
		CoverImagePath: "/covers/bio-form-4.jpg",
	},
	{
		Slug:           "kcse-physics-form-3-exam-practice",
		Title:          "KCSE Physics Exam Practice · Form 3",
		Subject:        "Physics",
		Form:           "3",
		Price:          930,
		Description:    "Form 3 physics exam-style questions grouped by topic, with step-by-step solutions and examiner-style marking notes.",
		CoverImagePath: "/covers/physics-form-3.jpg",
	},
	{
		Slug:           "kcse-business-studies-form-4-revision-guide",
		Title:          "KCSE Business Studies · Form 4 Revision Guide",
		Subject:        "Business Studies",
		Form:           "4",
		Price:          800,
		Description:    "Concise notes and KCSE-style questions covering key Form 4 business concepts, case studies, and structured essay practice.",
		CoverImagePath: "/covers/business-form-4.jpg",
	},
	{
		Slug:           "kcse-history-form-2-topic-notes",
		Title:          "KCSE History & Government · Form 2 Topic Notes",
		Subject:        "History & Government",
		Form:           "2",
		Price:          760,
		Description:    "Organised topic notes and short-answer questions for Form 2 History & Government, aligned with KCSE trends and verbs.",
		CoverImagePath: "/covers/history-form-2.jpg",
	},
	{
		Slug:           "kcse-cre-form-4-chapter-review",
		Title:          "KCSE C.R.E. · Form 4 Chapter Review",
		Subject:        "C.R.E.",
		Form:           "4",
		Price:          720,
		Description:    "Chapter-by-chapter review questions and essay prompts for Form 4 C.R.E., with guidance on structuring KCSE-style answers.",
		CoverImagePath: "/covers/cre-form-4.jpg",
	},
}

// Lessons from the Topnotch Online TV channel, served when no live source is reachable.
var videos = []Video{
	{
		ID:          "VIDEO_ID_1",
		Title:       "KCSE Mathematics Revision – Quadratic Equations (Topnotch Online TV)",
		Description: "A clear breakdown of quadratic equations with exam-style examples and quick checks for common mistakes.",
	},
	{
		ID:          "VIDEO_ID_2",
		Title:       "KCSE Chemistry – Titration Basics (Topnotch Online TV)",
		Description: "Understand the titration setup, calculations, and how to present working the KCSE way.",
	},
	{
		ID:          "VIDEO_ID_3",
		Title:       "KCSE Biology – Transport in Plants (Topnotch Online TV)",
		Description: "Key processes, diagrams, and the exact language examiners reward in transport questions.",
	},
	{
		ID:          "VIDEO_ID_4",
		Title:       "KCSE English – Comprehension Strategies (Topnotch Online TV)",
		Description: "A practical approach to comprehension: reading, annotation, and answering for marks—not guesses.",
	},
}

const blogAuthor = "Thaddeus Mbaluka"

var blogPosts = []BlogPost{
	{
		Slug:        "how-to-structure-your-kcse-revision-weeks",
		Title:       "How to Structure Your KCSE Revision Weeks",
		Excerpt:     "A calm, week-by-week revision structure that balances past papers, notes, and rest so you do not burn out before the exam room.",
		PublishedAt: "2026-01-05",
		CreatedAt:   "2026-01-03T10:00:00",
		UpdatedAt:   "2026-01-05T08:00:00",
		Author:      blogAuthor,
		Status:      PostPublished,
		Views:       1245,
		Content: strings.Join([]string{
			"Many candidates treat KCSE revision as a race to finish as many papers as possible. The result is exhaustion, not mastery.",
			"",
			"A more effective approach is to think in weeks, not days. Each week should have a clear focus per subject: a small set of topics, a limited pool of past papers, and a realistic number of questions you can mark and reflect on.",
			"",
			"Start by mapping your syllabus into 6–8 revision blocks per subject. Then, for each week:",
			"",
			"- Choose 2–3 high-yield topics in each subject.",
			"- Attempt past-paper questions for those topics only.",
			"- Mark your work with the official marking scheme or teacher guidance.",
			"- Summarise patterns you notice: verbs used, common tricks, and recurring diagrams.",
			"",
			"This slower, more deliberate rhythm gives your brain time to recognise patterns—the same patterns examiners use when setting KCSE papers.",
		}, "\n"),
	},
	{
		Slug:        "using-the-octopus-revision-method-with-past-papers",
		Title:       "Using the Octopus Revision Method with Past Papers",
		Excerpt:     "Past papers are powerful only when they are organised. Here is how the Octopus Revision Method helps you see connections instead of isolated questions.",
		PublishedAt: "2026-01-08",
		CreatedAt:   "2026-01-06T14:30:00",
		UpdatedAt:   "2026-01-08T09:15:00",
		Author:      blogAuthor,
		Status:      PostPublished,
		Views:       1890,
		Content: strings.Join([]string{
			"The Octopus Revision Method treats each topic like the head of an octopus: past-paper questions are the tentacles that reach into different years, schools, and exam settings.",
			"",
			"Instead of doing papers year by year, you:",
			"",
			"1. Pick one topic (for example, Quadratic Equations in Mathematics).",
			"2. Collect 10–20 questions on that topic from different KCSE years.",
			"3. Attempt them in short, timed sets.",
			"4. Mark, annotate, and group the questions by idea: standard, twisted, and challenge.",
			"",
			"Over time, you begin to see that examiners recycle core ideas with small changes. This removes the fear of 'new' questions and gives you a calm sense of familiarity when you open the paper.",
		}, "\n"),
	},
	{
		Slug:        "quiet-study-routines-for-kcse-candidates",
		Title:       "Quiet Study Routines for KCSE Candidates",
		Excerpt:     "Not every candidate thrives in noisy group discussions. This guide outlines quiet, focused routines that still prepare you fully for KCSE.",
		PublishedAt: "2026-01-12",
		CreatedAt:   "2026-01-10T11:00:00",
		UpdatedAt:   "2026-01-12T07:30:00",
		Author:      blogAuthor,
		Status:      PostPublished,
		Views:       987,
		Content: strings.Join([]string{
			"Some of the strongest KCSE performances come from students who prefer quiet, structured study over loud discussions.",
			"",
			"A quiet routine does not mean studying alone without feedback. It means:",
			"",
			"- Short, timed study blocks (25–40 minutes) with clear goals.",
			"- Check-ins with a teacher or study partner a few times a week.",
			"- Written reflection after past-paper sessions: what you missed and why.",
			"",
			"Combine this routine with well-organised revision materials—such as topic-based books and visual summaries—and you can progress confidently without draining your energy in every group discussion.",
		}, "\n"),
	},
	{
		Slug:        "how-teachers-can-use-octopus-method-in-class",
		Title:       "How Teachers Can Use the Octopus Method in Class",
		Excerpt:     "A practical outline for turning topic-based Octopus Method materials into weekly lesson plans and homework sets.",
		PublishedAt: "2026-01-14",
		CreatedAt:   "2026-01-12T15:45:00",
		UpdatedAt:   "2026-01-14T10:00:00",
		Author:      blogAuthor,
		Status:      PostPublished,
		Views:       756,
		Content: strings.Join([]string{
			"The Octopus Method is not only for private study. In the classroom, it can provide a clear structure for week-by-week KCSE preparation.",
			"",
			"Start each topic by mapping past-paper questions to specific lessons. During class, work through one or two questions together, then assign similar items from the same 'tentacle' as homework.",
			"",
			"Over the term, your students will see the same core ideas in multiple forms, across different years and contexts. This repetition with variation builds deep familiarity without feeling repetitive.",
		}, "\n"),
	},
	{
		Slug:        "avoiding-kcse-cramming-panic",
		Title:       "Avoiding KCSE Cramming Panic",
		Excerpt:     "Last-minute cramming is tempting but unreliable. Here is how to protect your energy and still feel prepared in the final month.",
		PublishedAt: "2026-01-16",
		CreatedAt:   "2026-01-14T09:20:00",
		UpdatedAt:   "2026-01-16T08:45:00",
		Author:      blogAuthor,
		Status:      PostPublished,
		Views:       1123,
		Content: strings.Join([]string{
			"The final month before KCSE can feel like a sprint, but treating it as a frantic rush often damages performance more than it helps.",
			"",
			"Instead of trying to 'cover everything', shift your focus to:",
			"",
			"- Cleaning up weak topics that keep appearing in past papers.",
			"- Practising full sections under timed conditions.",
			"- Reviewing marked scripts and writing short reflections on common mistakes.",
			"",
			"By narrowing your attention in this way, you protect your sleep, your confidence, and your ability to think clearly in the exam room.",
		}, "\n"),
	},
}

// BlogPosts returns every built-in post regardless of status.
func BlogPosts() []BlogPost {
	return append([]BlogPost(nil), blogPosts...)
}
