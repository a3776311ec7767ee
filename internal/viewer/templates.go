package viewer

// shellTemplate is the html/template for the exported standalone viewer.
// Everything the page needs at open time is inline; the only external
// references are the hyperlinks the customer explicitly taps.
const shellTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>{{.Title}}</title>
<style>
:root{ {{.CSSVars}} }
*{box-sizing:border-box}
body{margin:0;background:var(--bg);color:var(--ink);font-family:ui-sans-serif,system-ui,-apple-system,Segoe UI,Roboto,Arial;padding:0 16px 72px}
a{color:var(--accent)}
.wrap{max-width:1100px;margin:0 auto}
header.viewer-hdr{position:sticky;top:0;z-index:20;display:flex;justify-content:space-between;align-items:flex-start;gap:12px;padding:12px 0;background:var(--bg)}
header.viewer-hdr h1{margin:0;font-size:22px}
.muted{color:var(--muted);font-size:14px}
.toolbar{position:sticky;top:52px;z-index:19;background:var(--bg);padding:8px 0;border-bottom:1px solid #232b36}
#menu-search{width:100%;padding:8px 12px;border:1px solid #232b36;border-radius:8px;background:transparent;color:var(--ink);outline:none}
.chips{display:flex;gap:8px;overflow-x:auto;padding-top:8px}
.chip{flex:0 0 auto;border:1px solid #232b36;border-radius:999px;background:transparent;color:var(--ink);padding:4px 12px;font-size:13px;cursor:pointer}
.chip:hover{border-color:var(--brand);color:var(--brand)}
.card{background:#151a21;border:1px solid #232b36;border-radius:12px;padding:12px;margin-top:12px}
.about{margin-top:12px}
.foot{margin-top:12px}
.cta-bar{position:fixed;left:0;right:0;bottom:0;z-index:21;display:flex;justify-content:center;gap:10px;padding:10px;background:var(--bg);border-top:1px solid #232b36}
.cta{display:inline-block;padding:8px 16px;border-radius:999px;border:1px solid var(--brand);color:var(--brand);text-decoration:none;font-size:14px}
</style>
</head>
<body>
  <div class="wrap">
    <header class="viewer-hdr">
      <h1>{{.Title}}</h1>
      <div class="muted">{{.Subtitle}}</div>
    </header>
    <div class="toolbar">
      <input type="search" id="menu-search" placeholder="Search dishes..." autocomplete="off"/>
      <div class="chips">{{.Chips}}</div>
    </div>
    <div class="card" id="menu">{{.Fragment}}</div>
    {{if .About}}<div class="card about">{{.About}}</div>{{end}}
    <p class="muted foot">Offline viewer • generated by Menu Engine.</p>
  </div>
  {{if .CTAs}}<nav class="cta-bar">{{.CTAs}}</nav>{{end}}
  <script>{{.Script}}</script>
</body>
</html>
`

// viewerScript implements the embedded interactive behavior: category chip
// navigation with layered anchor resolution, and live item search driven
// by structural heuristics so it survives template variation.
const viewerScript = `(function(){
  function findSection(slug, name){
    var el = document.getElementById('cat-' + slug);
    if (el) return el;
    var lower = name.toLowerCase();
    var anchored = document.querySelectorAll('[id^="cat-"]');
    for (var i = 0; i < anchored.length; i++) {
      var h = anchored[i].querySelector('h1,h2,h3,h4');
      if (h && h.textContent.toLowerCase().indexOf(lower) !== -1) return anchored[i];
    }
    var heads = document.querySelectorAll('h1,h2,h3,h4');
    for (var j = 0; j < heads.length; j++) {
      if (heads[j].textContent.toLowerCase().indexOf(lower) !== -1) return heads[j];
    }
    return null;
  }

  var chips = document.querySelectorAll('.chip');
  for (var c = 0; c < chips.length; c++) {
    (function(chip){
      chip.addEventListener('click', function(){
        var el = findSection(chip.getAttribute('data-target'), chip.textContent.trim());
        if (el) el.scrollIntoView({behavior: 'smooth', block: 'start'});
      });
    })(chips[c]);
  }

  function itemRows(){
    var selectors = ['.item', '.row', '.menu-item', '[data-item]', 'li.item-row'];
    for (var i = 0; i < selectors.length; i++) {
      var rows = document.querySelectorAll('#menu ' + selectors[i]);
      if (rows.length) return rows;
    }
    return [];
  }

  var input = document.getElementById('menu-search');
  if (input) {
    input.addEventListener('input', function(){
      var q = input.value.trim().toLowerCase();
      var rows = itemRows();
      for (var i = 0; i < rows.length; i++) {
        var nameEl = rows[i].querySelector('span') || rows[i];
        var match = !q || nameEl.textContent.toLowerCase().indexOf(q) !== -1;
        rows[i].style.display = match ? '' : 'none';
      }
    });
  }
})();`
