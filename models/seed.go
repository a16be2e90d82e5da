package models

func intPtr(n int) *int { return &n }

// SeedEvents is the built-in catalog used when no seed file or Mongo
// collection is configured.
func SeedEvents() []Event {
	return []Event{
		{
			ID:          1,
			Title:       "React Workshop for Beginners",
			Date:        MustDate("2025-09-15"),
			Time:        "10:00 AM - 4:00 PM",
			Description: "Learn the fundamentals of React development with hands-on exercises and real-world projects. This workshop covers components, state management, and modern React patterns.",
			Status:      StatusUpcoming,
			Type:        TypeWorkshop,
			Location:    "PACE Computer Lab 1",
			Year:        2025,
		},
		{
			ID:          2,
			Title:       "IEEE Technical Seminar Series",
			Date:        MustDate("2025-09-22"),
			Time:        "2:00 PM - 5:00 PM",
			Description: "Industry experts sharing insights on emerging technologies and career opportunities in tech. Topics include AI, IoT, and software engineering trends.",
			Status:      StatusUpcoming,
			Type:        TypeSeminar,
			Location:    "PACE Auditorium",
			Year:        2025,
		},
		{
			ID:          3,
			Title:       "Coding Competition - CodeStorm 2025",
			Date:        MustDate("2025-10-05"),
			Time:        "9:00 AM - 6:00 PM",
			Description: "Annual programming contest with exciting prizes and networking opportunities. Test your coding skills against fellow students in algorithmic challenges.",
			Status:      StatusUpcoming,
			Type:        TypeCompetition,
			Location:    "PACE Main Campus",
			Year:        2025,
		},
		{
			ID:          4,
			Title:       "Web Development Bootcamp",
			Date:        MustDate("2025-08-20"),
			Time:        "10:00 AM - 6:00 PM",
			Description: "Intensive full-stack web development training covering modern frameworks and best practices. HTML, CSS, JavaScript, React, Node.js, and database integration.",
			Status:      StatusCompleted,
			Type:        TypeWorkshop,
			Location:    "PACE Computer Lab 2",
			Year:        2025,

			Images: []string{
				"/images/events/bootcamp-1.jpg",
				"/images/events/bootcamp-2.jpg",
				"/images/events/bootcamp-3.jpg",
			},
			PostEventSummary: "Two days of full-stack training ending with every team shipping a deployed web app.",
			AttendanceCount:  intPtr(120),
			Highlights:       []string{"12 team projects deployed", "Guest talk on career paths in web development"},
		},
		{
			ID:          5,
			Title:       "AI & Machine Learning Symposium",
			Date:        MustDate("2025-08-10"),
			Time:        "1:00 PM - 7:00 PM",
			Description: "Exploring the latest trends in artificial intelligence and machine learning applications. Presentations on neural networks, deep learning, and practical AI implementations.",
			Status:      StatusCompleted,
			Type:        TypeSeminar,
			Location:    "PACE Conference Hall",
			Year:        2025,

			Images: []string{
				"/images/events/ai-symposium-1.jpg",
				"/images/events/ai-symposium-2.jpg",
			},
			PostEventSummary: "Faculty and industry speakers covered deep learning in production and responsible AI.",
			AttendanceCount:  intPtr(200),
			Highlights:       []string{"5 keynote presentations", "Student poster session"},
		},
		{
			ID:          6,
			Title:       "Mobile App Development Workshop",
			Date:        MustDate("2025-11-15"),
			Time:        "9:00 AM - 5:00 PM",
			Description: "Build your first mobile application using React Native. Learn cross-platform development, state management, and app deployment strategies.",
			Status:      StatusUpcoming,
			Type:        TypeWorkshop,
			Location:    "PACE Computer Lab 3",
			Year:        2025,
		},
		{
			ID:          7,
			Title:       "Cybersecurity Awareness Session",
			Date:        MustDate("2025-09-08"),
			Time:        "3:00 PM - 5:00 PM",
			Description: "Essential cybersecurity practices for students and professionals. Topics include password security, phishing awareness, and secure coding practices.",
			Status:      StatusUpcoming,
			Type:        TypeSeminar,
			Location:    "PACE Lecture Hall",
			Year:        2025,
		},
		{
			ID:          8,
			Title:       "Open Source Contribution Hackathon",
			Date:        MustDate("2025-07-25"),
			Time:        "10:00 AM - 8:00 PM",
			Description: "24-hour hackathon focused on contributing to open source projects. Collaborate with peers, learn version control, and make meaningful contributions to the community.",
			Status:      StatusCompleted,
			Type:        TypeCompetition,
			Location:    "PACE Innovation Lab",
			Year:        2025,

			Images:          []string{},
			AttendanceCount: intPtr(75),
			Highlights:      []string{"38 pull requests merged upstream"},
		},
	}
}

func SeedTestimonials() []Testimonial {
	return []Testimonial{
		{
			ID: 1, Name: "Rajesh Kumar", Role: "Senior Software Engineer", Company: "Tech Innovations Inc.",
			Image:  "/images/testimonials/rajesh.jpg",
			Quote:  "IEEE PACE Student Branch transformed my understanding of technology and leadership. The hands-on workshops and networking opportunities were invaluable for my career growth.",
			Rating: 5, Year: "2023",
		},
		{
			ID: 2, Name: "Priya Sharma", Role: "Data Scientist", Company: "Analytics Pro",
			Image:  "/images/testimonials/priya.jpg",
			Quote:  "The technical seminars and research projects I participated in through IEEE helped me develop critical thinking skills that I use every day in my current role.",
			Rating: 5, Year: "2022",
		},
		{
			ID: 3, Name: "Amit Patel", Role: "Product Manager", Company: "StartUp Ventures",
			Image:  "/images/testimonials/amit.jpg",
			Quote:  "Being part of IEEE PACE was a game-changer. The leadership opportunities and collaborative projects prepared me for managing diverse teams in the tech industry.",
			Rating: 5, Year: "2023",
		},
		{
			ID: 4, Name: "Sneha Reddy", Role: "Machine Learning Engineer", Company: "AI Solutions Ltd.",
			Image:  "/images/testimonials/sneha.jpg",
			Quote:  "The research competitions and peer collaboration at IEEE PACE pushed me to excel academically and professionally. Highly recommend to all engineering students!",
			Rating: 5, Year: "2024",
		},
		{
			ID: 5, Name: "Karthik Krishnan", Role: "Systems Architect", Company: "Cloud Systems Corp.",
			Image:  "/images/testimonials/karthik.jpg",
			Quote:  "The mentorship and technical guidance I received through IEEE activities were instrumental in shaping my career path in cloud computing and distributed systems.",
			Rating: 5, Year: "2023",
		},
	}
}
