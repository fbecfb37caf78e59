package web

// layoutTemplate wraps every page. Each page template defines "content".
const layoutTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} | {{.Site.Name}}</title>
  <link rel="stylesheet" href="/static/style.css">
</head>
<body{{if .ClientNav}} data-client-nav{{end}}>
  <header class="site-header">
    <div class="container header-inner">
      <a {{link "/"}} class="brand">{{.Site.Name}}</a>
      <nav class="site-nav">
        <a {{link "/courses"}}>Courses</a>
        <a {{link "/demo"}}>Demo</a>
      </nav>
    </div>
  </header>
  <main id="main" data-title="{{.Title}} | {{.Site.Name}}"{{if .Overlay}} data-overlay{{end}}>
{{template "content" .}}
  </main>
  <div id="notice" class="notice" hidden></div>
  <div id="ai-root"></div>
  <script src="/static/overlay.js"></script>
</body>
</html>`

const homeTemplate = `{{define "content"}}
<section class="hero">
  <div class="container hero-inner">
    <h1>{{.Site.Name}}</h1>
    <h2>Master New Skills with Interactive AI-Powered Learning</h2>
    <p>Explore comprehensive courses designed for college students. Get instant explanations
      by selecting any text and asking our AI assistant.</p>
    <div class="actions">
      <a {{link "/courses"}} class="btn btn-hero">Browse Courses</a>
      <a {{link "/demo"}} class="btn btn-outline">Watch Demo</a>
    </div>
  </div>
</section>

<section class="features">
  <div class="container">
    <h3>Why Choose {{.Site.Name}}?</h3>
    <p class="muted">Our platform combines traditional learning with cutting-edge AI assistance
      to help you understand complex concepts faster.</p>
    <div class="grid grid-3">
      <div class="feature">
        <h4>Interactive Content</h4>
        <p class="muted">Select any text to get instant AI explanations and examples.</p>
      </div>
      <div class="feature">
        <h4>Expert Instructors</h4>
        <p class="muted">Learn from university professors and industry professionals.</p>
      </div>
      <div class="feature">
        <h4>Proven Results</h4>
        <p class="muted">Join thousands of students who've mastered new skills.</p>
      </div>
    </div>
  </div>
</section>

<section class="popular">
  <div class="container">
    <h3>Popular Courses</h3>
    <p class="muted">Start your learning journey with our carefully curated courses.
      Each lesson includes interactive AI assistance for better understanding.</p>
    <div class="grid grid-2">
      {{range .Page.Courses}}
      <article class="card course-card">
        <div class="card-head">
          <h4>{{.Title}}</h4>
          <span class="dot {{.Color}}"></span>
        </div>
        <p class="muted">{{.Description}}</p>
        <p class="stats">{{thousands .Students}} students · {{.Duration}} · {{.Lessons}} lessons</p>
        <div class="meta">
          <div><span class="label">Instructor</span> {{.Instructor}}</div>
          <div><span class="label">Level</span> <span class="badge">{{.Level}}</span></div>
        </div>
        <a {{link (courseURL .ID)}} class="btn btn-hero btn-block">Start Learning</a>
      </article>
      {{end}}
    </div>
  </div>
</section>

<section class="cta">
  <div class="container">
    <h3>Ready to Transform Your Learning?</h3>
    <p>Join thousands of students who are already using AI-powered learning
      to master complex subjects faster than ever before.</p>
    <a {{link "/courses"}} class="btn btn-outline">Get Started Today</a>
  </div>
</section>
{{end}}`

const coursesTemplate = `{{define "content"}}
<div class="container page">
  <a {{link "/"}} class="back">&larr; Back to Home</a>
  <h1>Browse Courses</h1>
  <p class="lead">Discover comprehensive courses designed for your learning journey.
    Select any text in course descriptions to get instant AI explanations.</p>

  <form class="card filters" method="get" action="/courses">
    <input type="search" name="q" value="{{.Page.Criteria.Query}}" placeholder="Search courses, instructors, or topics...">
    {{if ne .Page.Criteria.Category "All"}}<input type="hidden" name="category" value="{{.Page.Criteria.Category}}">{{end}}
    {{if ne .Page.Criteria.Level "All"}}<input type="hidden" name="level" value="{{.Page.Criteria.Level}}">{{end}}
    <div class="chips" aria-label="Category">
      {{$c := .Page.Criteria}}
      {{range .Page.Categories}}
      <a {{link (filterURL $c "category" .)}} class="chip{{if eq . $c.Category}} active{{end}}">{{.}}</a>
      {{end}}
    </div>
    <div class="chips" aria-label="Level">
      {{range .Page.Levels}}
      <a {{link (filterURL $c "level" .)}} class="chip{{if eq . $c.Level}} active{{end}}">{{.}}</a>
      {{end}}
    </div>
  </form>

  <p class="muted results-count">Showing {{.Page.Showing}} of {{.Page.Total}} courses</p>

  {{if .Page.Courses}}
  <div class="grid grid-3">
    {{range .Page.Courses}}
    <article class="card course-card">
      <div class="card-head">
        <h4>{{.Title}}</h4>
        <span class="dot {{.Color}}"></span>
      </div>
      <p class="muted">{{.Description}}</p>
      <p class="stats">{{thousands .Students}} · {{.Duration}} · {{.Lessons}} lessons</p>
      <p class="stats"><span class="rating">&#9733; {{printf "%.1f" .Rating}}</span>
        <span class="badge">{{.Level}}</span> <span class="badge badge-outline">{{.Category}}</span></p>
      <div class="meta">
        <div><span class="label">Instructor</span> {{.Instructor}}</div>
        <div><span class="label">Price</span> <strong class="price">{{.Price}}</strong></div>
      </div>
      <a {{link (courseURL .ID)}} class="btn btn-hero btn-block">Start Learning</a>
    </article>
    {{end}}
  </div>
  {{else}}
  <div class="empty">
    <h3>No courses found</h3>
    <p class="muted">Try adjusting your search terms or filters to find what you're looking for.</p>
    <a {{link "/courses"}} class="btn">Clear Filters</a>
  </div>
  {{end}}

  <aside class="card tip">
    <h4>AI Learning Assistant</h4>
    <p class="muted">Select any text in course descriptions above to instantly get AI explanations and examples.
      No right-clicking needed - just select and learn!</p>
  </aside>
</div>
{{end}}`

const demoTemplate = `{{define "content"}}
<div class="container page narrow">
  <a {{link "/"}} class="back">&larr; Back to Home</a>
  <h1>Platform Demo</h1>
  <div class="center">
    <h2>See {{.Site.Name}} in Action</h2>
    <p class="lead">Watch how our AI-powered learning platform transforms the way you study</p>
  </div>
  <div class="video">
    <iframe src="{{.Page.VideoURL}}" title="{{.Site.Name}} Platform Demo" frameborder="0"
      allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture; web-share"
      allowfullscreen></iframe>
  </div>
  <div class="center cta-inline">
    <h3>Ready to Start Learning?</h3>
    <p class="muted">Join thousands of students who are already using {{.Site.Name}} to accelerate their learning.</p>
    <a {{link "/courses"}} class="btn btn-hero">Browse Courses</a>
    <a {{link "/"}} class="btn btn-outline">Learn More</a>
  </div>
</div>
{{end}}`

const courseTemplate = `{{define "content"}}
{{with .Page.Course}}
<div class="container page">
  <a {{link "/"}} class="back">&larr; Back to Courses</a>
  <h1>{{.Title}}</h1>
  <p class="lead">{{.Description}}</p>
  <p class="stats">{{thousands .Students}} students · {{.Duration}} · {{.Instructor}}</p>

  <div class="course-layout">
    <aside class="card lesson-list">
      <h3>Course Content</h3>
      <p class="muted">Select text in any lesson to ask the AI assistant</p>
      <ol>
        {{range .Lessons}}
        <li><span class="lesson-title">{{.Title}}</span> <span class="muted">{{.Duration}}</span></li>
        {{end}}
      </ol>
    </aside>
    <div class="lessons">
      {{range $i, $l := .Lessons}}
      <article class="card lesson" id="lesson-{{$l.ID}}">
        <header>
          <span class="lesson-number">{{add1 $i}}</span>
          <div>
            <h3>{{$l.Title}}</h3>
            <p class="muted">{{$l.Duration}}</p>
          </div>
        </header>
        <div class="prose">{{$l.Content}}</div>
      </article>
      {{end}}
      <div class="center">
        <button type="button" class="btn btn-hero" data-notice="Page 2 coming soon! This course has additional advanced content.">Continue to Page 2 &rarr;</button>
      </div>
      <aside class="card tip">
        <h4>Try the AI Assistant!</h4>
        <p class="muted">Select any text in the lessons above to see the assistant in action.
          It will provide explanations, examples, and help you understand complex concepts.</p>
      </aside>
    </div>
  </div>
</div>
{{end}}
{{end}}`

const courseNotFoundTemplate = `{{define "content"}}
<div class="container page center not-found">
  <h1>Course Not Found</h1>
  <a {{link "/"}} class="btn btn-hero">Return Home</a>
</div>
{{end}}`

const notFoundTemplate = `{{define "content"}}
<div class="container page center not-found">
  <h1>404</h1>
  <p class="lead">Oops! Page not found</p>
  <a {{link "/"}} class="link">Return to Home</a>
</div>
{{end}}`
