package preview

const builderPage = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Menu Engine — Builder</title>
<style>
  :root{--bg:#0b0f14;--ink:#e6edf3;--muted:#9aa3ad;--brand:#f59e0b;--accent:#22d3ee}
  *{box-sizing:border-box}
  body{margin:0;font-family:system-ui,-apple-system,"Segoe UI",Roboto,sans-serif;background:var(--bg);color:var(--ink)}
  header{position:sticky;top:0;display:flex;align-items:center;gap:12px;padding:10px 16px;background:rgba(11,15,20,.92);border-bottom:1px solid rgba(255,255,255,.08);backdrop-filter:blur(6px)}
  header h1{font-size:15px;margin:0;flex:1}
  select,input,button{font:inherit;background:#121821;color:var(--ink);border:1px solid rgba(255,255,255,.14);border-radius:8px;padding:6px 10px}
  button{cursor:pointer}
  button.primary{background:var(--brand);color:#0b0f14;border-color:transparent;font-weight:600}
  main{display:grid;grid-template-columns:280px 1fr;gap:16px;padding:16px;max-width:1200px;margin:0 auto}
  aside{display:flex;flex-direction:column;gap:8px}
  aside label{font-size:12px;color:var(--muted)}
  #preview{background:#0e141b;border:1px solid rgba(255,255,255,.08);border-radius:14px;padding:16px;min-height:320px}
  #status{font-size:12px;color:var(--muted)}
  @media(max-width:760px){main{grid-template-columns:1fr}}
</style>
</head>
<body>
<header>
  <h1>Menu Engine</h1>
  <select id="template-select"></select>
  <select id="theme-select"></select>
  <button class="primary" id="export-btn">Export viewer</button>
</header>
<main>
  <aside>
    <label>Restaurant name <input id="biz-name"></label>
    <label>Address <input id="biz-address"></label>
    <label>Phone <input id="biz-phone"></label>
    <label>WhatsApp <input id="biz-whatsapp"></label>
    <label>Maps link <input id="biz-maps"></label>
    <button id="biz-save">Save details</button>
    <div id="status"></div>
  </aside>
  <section id="preview"></section>
</main>
<script>
(function(){
  var status = document.getElementById('status');

  function say(msg){ status.textContent = msg; }

  function refresh(){
    fetch('/api/render').then(function(r){
      if(!r.ok){ throw new Error('no menu loaded'); }
      return r.text();
    }).then(function(html){
      document.getElementById('preview').innerHTML = html;
    }).catch(function(err){
      document.getElementById('preview').innerHTML =
        '<p style="color:var(--muted)">'+err.message+'</p>';
    });
  }

  function loadBusiness(){
    fetch('/api/menu').then(function(r){ return r.ok ? r.json() : null; }).then(function(m){
      if(!m){ return; }
      document.getElementById('biz-name').value = m.name || '';
      document.getElementById('biz-address').value = m.address || '';
      document.getElementById('biz-phone').value = m.phone || '';
      document.getElementById('biz-whatsapp').value = m.whatsapp || '';
      document.getElementById('biz-maps').value = m.maps || '';
      select('template-select', m.template);
      select('theme-select', m.theme);
    });
  }

  function select(id, value){
    var el = document.getElementById(id);
    if(value){ el.value = value; }
  }

  function fillOptions(id, names){
    var el = document.getElementById(id);
    el.innerHTML = '';
    names.forEach(function(n){
      var opt = document.createElement('option');
      opt.value = n; opt.textContent = n;
      el.appendChild(opt);
    });
  }

  fetch('/api/themes').then(function(r){ return r.json(); }).then(function(data){
    fillOptions('theme-select', data.themes || []);
    select('theme-select', data.active);
  });
  fillOptions('template-select', ['two-col','grid']);

  document.getElementById('template-select').addEventListener('change', function(e){
    post('/api/select', {template: e.target.value});
  });
  document.getElementById('theme-select').addEventListener('change', function(e){
    post('/api/select', {theme: e.target.value});
  });
  document.getElementById('biz-save').addEventListener('click', function(){
    post('/api/business', {
      name: document.getElementById('biz-name').value,
      address: document.getElementById('biz-address').value,
      phone: document.getElementById('biz-phone').value,
      whatsapp: document.getElementById('biz-whatsapp').value,
      maps: document.getElementById('biz-maps').value
    });
    say('Saved.');
  });
  document.getElementById('export-btn').addEventListener('click', function(){
    window.location = '/export';
  });

  function post(url, body){
    fetch(url, {method:'POST', headers:{'Content-Type':'application/json'}, body: JSON.stringify(body)})
      .then(refresh);
  }

  function connect(){
    var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
    var ws = new WebSocket(proto + location.host + '/ws');
    ws.onmessage = function(ev){
      if(ev.data === 'reload'){ refresh(); loadBusiness(); say('Updated from disk.'); }
    };
    ws.onclose = function(){ setTimeout(connect, 1000); };
  }

  refresh();
  loadBusiness();
  connect();
})();
</script>
</body>
</html>
`
