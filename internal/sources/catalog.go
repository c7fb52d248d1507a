package sources

var catalog = []Source{
	// APIs
	{ID: "remoteok", Name: "RemoteOK", Type: TypeAPI, URL: "https://remoteok.com/api", Enabled: true, Category: "Remote", Description: "Remote jobs worldwide"},
	{ID: "arbeitnow", Name: "Arbeitnow", Type: TypeAPI, URL: "https://www.arbeitnow.com/api/job-board-api", Enabled: true, Category: "Tech", Description: "European tech jobs"},
	{ID: "jobicy", Name: "Jobicy", Type: TypeAPI, URL: "https://jobicy.com/api/v2/remote-jobs", Enabled: true, Category: "Remote", Description: "Remote job listings"},
	{ID: "himalayas", Name: "Himalayas", Type: TypeAPI, URL: "https://himalayas.app/jobs/api", Enabled: true, Category: "Remote", Description: "Remote tech jobs"},
	{ID: "remotive", Name: "Remotive", Type: TypeAPI, URL: "https://remotive.com/api/remote-jobs", Enabled: true, Category: "Remote", Description: "Remote job board"},
	{ID: "cryptojobs", Name: "Crypto Jobs", Type: TypeAPI, URL: "https://api.cryptojobslist.com/jobs", Enabled: true, Category: "Crypto", Description: "Blockchain & crypto jobs"},
	{ID: "web3career", Name: "Web3 Career", Type: TypeAPI, URL: "https://web3.career/api/v1/jobs", Enabled: true, Category: "Web3", Description: "Web3 & DeFi jobs"},
	{ID: "devitjobs", Name: "DevIT Jobs", Type: TypeAPI, URL: "https://devitjobs.uk/api/jobs", Enabled: true, Category: "Tech", Description: "UK developer jobs"},
	{ID: "nofluffjobs", Name: "No Fluff Jobs", Type: TypeAPI, URL: "https://nofluffjobs.com/api/search/posting", Enabled: true, Category: "Tech", Description: "IT jobs in Europe"},
	{ID: "usajobs", Name: "USAJobs", Type: TypeAPI, URL: "https://data.usajobs.gov/api/search", Enabled: true, Category: "Government", Description: "US Government jobs"},
	{ID: "angellist", Name: "AngelList/Wellfound", Type: TypeAPI, URL: "https://api.angel.co/1/jobs", Enabled: true, Category: "Startup", Description: "Startup jobs"},

	// RSS feeds
	{ID: "weworkremotely", Name: "We Work Remotely", Type: TypeRSS, URL: "https://weworkremotely.com/remote-jobs.rss", Enabled: true, Category: "Remote", Description: "Largest remote work community"},
	{ID: "workingnomads", Name: "Working Nomads", Type: TypeRSS, URL: "https://www.workingnomads.com/jobs/feed", Enabled: true, Category: "Remote", Description: "Digital nomad jobs"},
	{ID: "authenticjobs", Name: "Authentic Jobs", Type: TypeRSS, URL: "https://authenticjobs.com/rss/custom.rss", Enabled: true, Category: "Design", Description: "Design & creative jobs"},
	{ID: "dribbble", Name: "Dribbble Jobs", Type: TypeRSS, URL: "https://dribbble.com/jobs.rss", Enabled: true, Category: "Design", Description: "Designer jobs"},
	{ID: "justremote", Name: "Just Remote", Type: TypeRSS, URL: "https://justremote.co/remote-jobs/rss", Enabled: true, Category: "Remote", Description: "Remote job listings"},
	{ID: "remoteco", Name: "Remote.co", Type: TypeRSS, URL: "https://remote.co/remote-jobs/feed/", Enabled: true, Category: "Remote", Description: "Remote work resources"},
	{ID: "skipthedrive", Name: "Skip The Drive", Type: TypeRSS, URL: "https://www.skipthedrive.com/feed/", Enabled: true, Category: "Remote", Description: "Work from home jobs"},
	{ID: "nodesk", Name: "Nodesk", Type: TypeRSS, URL: "https://nodesk.co/remote-jobs/rss/", Enabled: true, Category: "Remote", Description: "Remote job resources"},
	{ID: "dynamitejobs", Name: "Dynamite Jobs", Type: TypeRSS, URL: "https://dynamitejobs.com/feed", Enabled: true, Category: "Remote", Description: "Remote jobs for digital nomads"},
	{ID: "remoteleaf", Name: "Remote Leaf", Type: TypeRSS, URL: "https://remoteleaf.com/feed", Enabled: true, Category: "Remote", Description: "Curated remote jobs"},
	{ID: "euremotejobs", Name: "EU Remote Jobs", Type: TypeRSS, URL: "https://euremotejobs.com/feed/", Enabled: true, Category: "Remote", Description: "European remote jobs"},
	{ID: "remote4me", Name: "Remote4Me", Type: TypeRSS, URL: "https://remote4me.com/feed", Enabled: true, Category: "Remote", Description: "Remote job aggregator"},

	// Language and platform feeds
	{ID: "pythonjobs", Name: "Python Jobs", Type: TypeRSS, URL: "https://www.python.org/jobs/feed/rss/", Enabled: true, Category: "Python", Description: "Python developer jobs"},
	{ID: "rubyjobs", Name: "Ruby Jobs", Type: TypeRSS, URL: "https://jobs.rubynow.com/rss", Enabled: true, Category: "Ruby", Description: "Ruby on Rails jobs"},
	{ID: "golangjobs", Name: "Golang Jobs", Type: TypeRSS, URL: "https://golang.cafe/rss", Enabled: true, Category: "Go", Description: "Go developer jobs"},
	{ID: "rustjobs", Name: "Rust Jobs", Type: TypeRSS, URL: "https://rustjobs.dev/feed.xml", Enabled: true, Category: "Rust", Description: "Rust developer jobs"},
	{ID: "phpjobs", Name: "Laravel Jobs", Type: TypeRSS, URL: "https://larajobs.com/feed", Enabled: true, Category: "PHP", Description: "PHP & Laravel jobs"},
	{ID: "iosjobs", Name: "iOS Jobs", Type: TypeRSS, URL: "https://iosdevjobs.com/feed/", Enabled: true, Category: "Mobile", Description: "iOS developer jobs"},
	{ID: "androidjobs", Name: "Android Jobs", Type: TypeRSS, URL: "https://androidjobs.io/feed/", Enabled: true, Category: "Mobile", Description: "Android developer jobs"},

	// Industry
	{ID: "aijobs", Name: "AI Jobs", Type: TypeRSS, URL: "https://ai-jobs.net/feed/", Enabled: true, Category: "AI/ML", Description: "AI & Machine Learning jobs"},
	{ID: "datajobs", Name: "Data Jobs", Type: TypeRSS, URL: "https://datajobs.com/rss", Enabled: true, Category: "Data", Description: "Data science jobs"},
	{ID: "ycombinator", Name: "Y Combinator", Type: TypeRSS, URL: "https://news.ycombinator.com/jobs.rss", Enabled: true, Category: "Startup", Description: "YC startup jobs"},
	{ID: "startupers", Name: "Startupers", Type: TypeRSS, URL: "https://www.startupers.com/feed", Enabled: true, Category: "Startup", Description: "Startup job listings"},

	// Design
	{ID: "designerjobs", Name: "Designer Jobs", Type: TypeRSS, URL: "https://designerjobs.co/feed", Enabled: true, Category: "Design", Description: "Designer job board"},
	{ID: "uxjobs", Name: "UX Jobs", Type: TypeRSS, URL: "https://www.uxjobsboard.com/feed", Enabled: true, Category: "Design", Description: "UX designer jobs"},

	// Marketing
	{ID: "growthhackers", Name: "Growth Hackers", Type: TypeRSS, URL: "https://growthhackers.com/jobs/feed", Enabled: true, Category: "Marketing", Description: "Growth & marketing jobs"},
	{ID: "marketingjobs", Name: "Marketing Jobs", Type: TypeRSS, URL: "https://www.marketingjobs.io/feed", Enabled: true, Category: "Marketing", Description: "Marketing positions"},

	// Government and international
	{ID: "eujobs", Name: "EU Jobs", Type: TypeRSS, URL: "https://epso.europa.eu/job-opportunities/feed", Enabled: true, Category: "Government", Description: "European Union jobs"},
	{ID: "unjobs", Name: "UN Jobs", Type: TypeRSS, URL: "https://unjobs.org/rss", Enabled: true, Category: "Government", Description: "United Nations jobs"},
}
