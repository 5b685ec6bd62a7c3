package generator

// Default templates. Hosts that want a different look regenerate with their
// own output pipeline; these keep the generated tree self-contained.
const (
	defaultLayout = `<!DOCTYPE html>
<html lang="en">
	<head>
		<meta charset="utf-8" />
		<meta name="viewport" content="width=device-width, initial-scale=1" />
		<meta name="generator" content="buildlog" />
		{{with .Profile.Description}}<meta name="description" content={{. | printf "%q"}} />{{end}}
		<title>{{.Title}}</title>
	</head>
	<body>
		<nav>
			<a href="/">{{.Profile.Title}}</a>
			<a href="/roadmap/">roadmap</a>
			<a href="/skills/">skills</a>
			<a href="/log/">log</a>
			<a href="/manifesto/">manifesto</a>
		</nav>
		<main>
			{{if .IsHome}}{{template "home" .}}{{end}}
			{{if .IsRoadmap}}{{template "roadmap" .}}{{end}}
			{{if .IsSkills}}{{template "skills" .}}{{end}}
			{{if .IsLog}}{{template "log" .}}{{end}}
			{{if .IsPost}}{{template "post" .}}{{end}}
			{{if .IsManifesto}}{{template "manifesto" .}}{{end}}
		</main>
		<footer>
			<small>generated {{.GeneratedAt.Format "2006-01-02"}}</small>
		</footer>
	</body>
</html>`

	defaultHome = `{{define "home"}}
<section class="hero">
	<h1>{{.Profile.Author.Name}}</h1>
	<p>{{.Profile.Tagline}}</p>
	{{with .Profile.Author.Bio}}<p>{{.}}</p>{{end}}
</section>
<section class="recent">
	<h2>Latest entries</h2>
	{{range .Posts}}
	<article>
		<a href="/log/{{.Slug}}/">{{.Title}}</a>
		<time datetime="{{.Date}}">{{.Date}}</time>
		<p>{{.Excerpt}}</p>
	</article>
	{{else}}
	<p>No entries yet.</p>
	{{end}}
</section>
{{end}}`

	defaultRoadmap = `{{define "roadmap"}}
<h1>Roadmap</h1>
{{range .Profile.Roadmap}}
<section class="milestone {{.Status}}">
	<h2>{{.Phase}} {{.Title}}</h2>
	<p class="status">{{.Status}}</p>
	<ul>
		{{range .Items}}<li>{{.}}</li>{{end}}
	</ul>
</section>
{{end}}
{{end}}`

	defaultSkills = `{{define "skills"}}
<h1>Skills</h1>
{{range .Profile.Skills}}
<section class="skill-group">
	<h2>{{.Name}}</h2>
	<table>
		{{range .Skills}}
		<tr><td>{{.Name}}</td><td>{{.Level}}/5</td></tr>
		{{end}}
	</table>
</section>
{{end}}
{{end}}`

	defaultLog = `{{define "log"}}
<h1>Build Log</h1>
<nav class="facets">
	{{range .Facets}}
	<a href="{{.Route}}"{{if .Active}} class="active"{{end}}>{{.Label}}</a>
	{{end}}
</nav>
{{range .Posts}}
<article class="entry {{.Category}}">
	<a href="/log/{{.Slug}}/">{{.Title}}</a>
	<time datetime="{{.Date}}">{{.Date}}</time>
	<span>{{.ReadTime}}</span>
	<p>{{.Excerpt}}</p>
	{{if .Tags}}<ul class="tags">{{range .Tags}}<li>{{.}}</li>{{end}}</ul>{{end}}
</article>
{{else}}
<p>No entries in this category.</p>
{{end}}
{{end}}`

	defaultPost = `{{define "post"}}
{{with .Post}}
<article class="post">
	<h1>{{.Title}}</h1>
	<p class="meta">
		<time datetime="{{.Date}}">{{.Date}}</time>
		<span>{{.ReadTime}}</span>
		<span>{{.Category}}</span>
	</p>
	<div class="body">{{.HTML | raw}}</div>
	{{if .Tags}}<ul class="tags">{{range .Tags}}<li>{{.}}</li>{{end}}</ul>{{end}}
</article>
{{end}}
<nav class="pager">
	{{with .Prev}}<a rel="prev" href="/log/{{.Slug}}/">&larr; {{.Title}}</a>{{end}}
	{{with .Next}}<a rel="next" href="/log/{{.Slug}}/">{{.Title}} &rarr;</a>{{end}}
</nav>
{{end}}`

	defaultManifesto = `{{define "manifesto"}}
<h1>Manifesto</h1>
{{range .Profile.Manifesto}}
<p>{{.}}</p>
{{end}}
{{end}}`
)
