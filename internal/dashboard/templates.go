package dashboard

// pageTemplate is the full dashboard page. Chart fragments arrive
// pre-rendered as template.HTML fields on the View.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
    <title>breathewatch{{if .View.Place}} - {{.View.Place}}{{end}}</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <script src="https://cdn.jsdelivr.net/npm/echarts@5.4.3/dist/echarts.min.js"></script>
    <style>{{.CSS}}</style>
</head>
<body>
<div class="container">
    <h1>🌬️ breathewatch</h1>

    <form class="search" method="GET" action="/">
        <input type="text" name="q" placeholder="City or station name" value="{{.View.Query}}">
        <button type="submit">Search</button>
        <button type="button" onclick="queryGeo()">📍 Near me</button>
    </form>

    {{if .View.Err}}
    <div class="error">{{.View.Err}}</div>
    {{else}}

    <div class="place-header">
        <h2>{{.View.Place}}</h2>
        <form method="POST" action="/api/favorites">
            <input type="hidden" name="name" value="{{.View.Place}}">
            <button type="submit" class="fav-toggle">{{if .View.IsFavorite}}★ Saved{{else}}☆ Save{{end}}</button>
        </form>
    </div>

    <div class="panel gauge-panel">
        {{.View.GaugeHTML}}
        {{if .View.HasIndex}}
        <div class="assessment" style="border-color: {{.View.Assessment.Level.Color}}">
            <div class="level">{{.View.Assessment.Label}}</div>
            <p>{{.View.Assessment.Advisory}}</p>
            {{if .View.Assessment.Mask}}<div class="mask">😷 Mask recommended outdoors</div>{{end}}
            <div class="cigarettes">≈ {{.View.Cigarettes}} cigarettes/day equivalent</div>
        </div>
        {{else}}
        <div class="assessment neutral"><p>No aggregate reading reported by this station.</p></div>
        {{end}}
    </div>

    {{if .View.GuidanceHTML}}
    <div class="panel guidance">{{.View.GuidanceHTML}}</div>
    {{end}}

    <div class="panel">
        <h3>Pollutants</h3>
        <table class="pollutants">
            {{range .View.Readings}}
            <tr>
                <td>{{.Name}}</td>
                <td>{{if .Reported}}{{printf "%.0f" (deref .Value)}}{{else}}<span class="na">not reported</span>{{end}}</td>
            </tr>
            {{end}}
        </table>
        {{.View.BarsHTML}}
    </div>

    {{if .View.ForecastHTML}}
    <div class="panel">{{.View.ForecastHTML}}</div>
    {{end}}

    {{if .View.Advisories}}
    <div class="panel advisories">
        <h3>Agency Advisories</h3>
        <ul>
            {{range .View.Advisories}}
            <li><a href="{{.Link}}">{{.Title}}</a> <span class="date">{{.Published.Format "Jan 02"}}</span></li>
            {{end}}
        </ul>
    </div>
    {{end}}

    {{end}}

    {{if .View.Favorites}}
    <div class="panel favorites">
        <h3>Favorites</h3>
        <ul>
            {{range .View.Favorites}}
            <li><a href="/?q={{.}}">{{.}}</a></li>
            {{end}}
        </ul>
    </div>
    {{end}}

    <p class="footer">Generated {{.View.GeneratedAt}} | v{{.View.Version}}</p>
</div>
<script>
function queryGeo() {
    if (!navigator.geolocation) return;
    navigator.geolocation.getCurrentPosition(function(pos) {
        window.location = "/?geo=" + pos.coords.latitude + ";" + pos.coords.longitude;
    });
}
</script>
</body>
</html>`

// pageCSS is the static stylesheet for the dashboard page
const pageCSS = `
body { font-family: Arial, sans-serif; margin: 0; background: #f5f5f5; }
.container { max-width: 860px; margin: 0 auto; padding: 20px; }
h1 { color: #333; text-align: center; }
.search { display: flex; gap: 8px; margin: 20px 0; }
.search input { flex: 1; padding: 10px; border: 1px solid #ccc; border-radius: 5px; }
.search button { padding: 10px 16px; border: none; border-radius: 5px; background: #007bff; color: white; cursor: pointer; }
.place-header { display: flex; align-items: center; justify-content: space-between; }
.panel { background: white; padding: 20px; border-radius: 10px; margin: 16px 0; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
.assessment { border-left: 6px solid #6c757d; padding: 10px 16px; margin-top: 12px; }
.assessment .level { font-size: 1.3em; font-weight: bold; }
.mask { background: #fff3cd; padding: 8px; border-radius: 5px; margin: 8px 0; }
.cigarettes { color: #666; }
.error { background: #f8d7da; color: #721c24; padding: 15px; border-radius: 5px; }
table.pollutants { width: 100%; border-collapse: collapse; }
table.pollutants td { padding: 6px 10px; border-bottom: 1px solid #eee; }
.na { color: #999; font-style: italic; }
.favorites ul, .advisories ul { list-style: none; padding: 0; }
.favorites li, .advisories li { padding: 4px 0; }
a { color: #007bff; text-decoration: none; }
a:hover { text-decoration: underline; }
.fav-toggle { border: 1px solid #ffc107; background: #fffbe6; border-radius: 5px; padding: 6px 12px; cursor: pointer; }
.date { color: #999; font-size: 0.85em; }
.footer { text-align: center; color: #666; font-size: 0.85em; }
`
