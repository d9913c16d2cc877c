package launcher

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>FareScout</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background: linear-gradient(135deg, #0f0f1e 0%, #1a1a2e 100%);
            color: #e8eaed;
            min-height: 100vh;
        }

        .header {
            background: rgba(26, 26, 46, 0.95);
            padding: 1rem 2rem;
            border-bottom: 1px solid rgba(255, 255, 255, 0.1);
            display: flex;
            align-items: center;
            justify-content: space-between;
        }

        .header h1 {
            font-size: 1.5rem;
            font-weight: 600;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            -webkit-background-clip: text;
            -webkit-text-fill-color: transparent;
            background-clip: text;
        }

        .settings { display: flex; gap: 1rem; align-items: center; font-size: 0.9rem; }
        .settings label { color: rgba(232, 234, 237, 0.7); }
        .settings select {
            padding: 0.4rem 0.6rem;
            background: rgba(255, 255, 255, 0.05);
            color: #e8eaed;
            border: 1px solid rgba(255, 255, 255, 0.15);
            border-radius: 8px;
        }

        .container {
            max-width: 1000px;
            margin: 0 auto;
            padding: 2rem;
            display: flex;
            flex-direction: column;
            gap: 1.5rem;
        }

        .intro { color: rgba(232, 234, 237, 0.8); line-height: 1.6; }

        .search-form {
            display: grid;
            grid-template-columns: repeat(4, 1fr);
            gap: 1rem;
            padding: 1.25rem;
            background: rgba(255, 255, 255, 0.08);
            border-radius: 20px;
            border: 1px solid rgba(255, 255, 255, 0.1);
        }

        .field { display: flex; flex-direction: column; gap: 0.35rem; }
        .field label { font-size: 0.8rem; color: rgba(232, 234, 237, 0.7); }
        .field input, .field select {
            padding: 0.6rem 0.8rem;
            border: 1px solid rgba(255, 255, 255, 0.15);
            border-radius: 10px;
            background: rgba(255, 255, 255, 0.05);
            color: #e8eaed;
            font-size: 0.95rem;
        }
        .field input:focus, .field select:focus {
            outline: none;
            border-color: #667eea;
        }

        .run-row { grid-column: span 4; display: flex; justify-content: flex-end; }
        .run-row button {
            padding: 0.75rem 2.5rem;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            border: none;
            border-radius: 12px;
            cursor: pointer;
            font-size: 1rem;
            font-weight: 600;
        }
        .run-row button:disabled { background: rgba(255, 255, 255, 0.1); cursor: not-allowed; }

        .messages { display: flex; flex-direction: column; gap: 1rem; }
        .message {
            padding: 1rem 1.25rem;
            border-radius: 14px;
            background: rgba(255, 255, 255, 0.08);
            border: 1px solid rgba(255, 255, 255, 0.1);
            line-height: 1.6;
            word-wrap: break-word;
        }
        .message .source { font-weight: 600; margin-bottom: 0.4rem; }
        .message img { max-width: 100%; border-radius: 8px; margin-top: 0.5rem; }
        .message.completion { border-color: rgba(102, 126, 234, 0.6); font-weight: 600; }
        .message.error { border-color: rgba(234, 102, 102, 0.6); color: #f3b3b3; }

        .totals {
            display: flex;
            gap: 2rem;
            padding: 1rem 1.25rem;
            background: rgba(255, 255, 255, 0.05);
            border-radius: 14px;
            font-size: 0.9rem;
            color: rgba(232, 234, 237, 0.8);
        }
        .totals span strong { color: #e8eaed; }
    </style>
</head>
<body>
    <div class="header">
        <h1>🧠🤖 FareScout</h1>
        <div class="settings">
            <label for="provider">Provider</label>
            <select id="provider"></select>
            <label for="model">Model</label>
            <select id="model"></select>
        </div>
    </div>
    <div class="container">
        <p class="intro">Get an AI agent to search for the best flight ticket prices on PriceBreaker!
        Just enter your travel dates and airports below and let the agent do the heavy lifting.</p>
        <div class="search-form">
            <div class="field"><label for="departureDate">Departure Date</label><input type="date" id="departureDate"></div>
            <div class="field"><label for="returnDate">Return Date</label><input type="date" id="returnDate"></div>
            <div class="field"><label for="from">Departure Airport</label><input type="text" id="from" value="SIN"></div>
            <div class="field"><label for="to">Return Airport</label><input type="text" id="to" value="KUL"></div>
            <div class="field"><label for="passengers">No. of Pax</label><input type="number" id="passengers" min="1" value="1"></div>
            <div class="field"><label for="airline">Preferred Airline</label><input type="text" id="airline" placeholder="Any"></div>
            <div class="field"><label for="cabin">Class</label>
                <select id="cabin">
                    <option>Economy</option>
                    <option>Premium Economy</option>
                    <option>Business</option>
                    <option>First</option>
                </select>
            </div>
            <div class="run-row"><button id="runButton">Run</button></div>
        </div>
        <div class="messages" id="messages"></div>
        <div class="totals">
            <span>Prompt tokens: <strong id="promptTokens">0</strong></span>
            <span>Completion tokens: <strong id="completionTokens">0</strong></span>
            <span>Elapsed: <strong id="elapsed">-</strong></span>
        </div>
    </div>
    <script>
        const messagesDiv = document.getElementById('messages');
        const runButton = document.getElementById('runButton');
        const providerSelect = document.getElementById('provider');
        const modelSelect = document.getElementById('model');
        const sessionId = 'web-' + Date.now();
        let currentMessage = null;

        // Default to a one-night trip starting a week out
        const fmt = d => d.toISOString().slice(0, 10);
        const now = new Date();
        document.getElementById('departureDate').value = fmt(new Date(now.getTime() + 7 * 86400000));
        document.getElementById('returnDate').value = fmt(new Date(now.getTime() + 8 * 86400000));

        async function loadProviders() {
            const resp = await fetch('/api/providers');
            const data = await resp.json();
            providerSelect.innerHTML = '';
            for (const p of data.providers) {
                const opt = document.createElement('option');
                opt.value = p.id;
                opt.textContent = p.displayName;
                providerSelect.appendChild(opt);
            }
            await loadModels();
        }

        async function loadModels() {
            const resp = await fetch('/api/models?provider=' + encodeURIComponent(providerSelect.value));
            const data = await resp.json();
            modelSelect.innerHTML = '';
            for (const m of data.models || []) {
                const opt = document.createElement('option');
                opt.value = m;
                opt.textContent = m;
                modelSelect.appendChild(opt);
            }
        }

        providerSelect.addEventListener('change', loadModels);

        function addMessage(cls) {
            const div = document.createElement('div');
            div.className = 'message' + (cls ? ' ' + cls : '');
            messagesDiv.appendChild(div);
            div.scrollIntoView({ behavior: 'smooth', block: 'end' });
            return div;
        }

        function handleEvent(event, data) {
            if (event === 'label') {
                currentMessage = addMessage('');
                const src = document.createElement('div');
                src.className = 'source';
                src.textContent = data.label;
                currentMessage.appendChild(src);
            } else if (event === 'text') {
                if (!currentMessage) currentMessage = addMessage('');
                const body = document.createElement('div');
                if (data.html) { body.innerHTML = data.html; } else { body.textContent = data.text; }
                currentMessage.appendChild(body);
            } else if (event === 'image') {
                if (!currentMessage) currentMessage = addMessage('');
                const img = document.createElement('img');
                img.src = data.dataUri;
                currentMessage.appendChild(img);
            } else if (event === 'status') {
                addMessage('completion').textContent = data.message;
            } else if (event === 'completed') {
                addMessage('completion').textContent = data.message;
            } else if (event === 'result') {
                document.getElementById('promptTokens').textContent = data.promptTokens;
                document.getElementById('completionTokens').textContent = data.completionTokens;
                document.getElementById('elapsed').textContent = data.elapsedSeconds.toFixed(2) + ' s';
            } else if (event === 'error') {
                addMessage('error').textContent = 'Error: ' + data.error;
            }
        }

        async function runSearch() {
            runButton.disabled = true;
            messagesDiv.innerHTML = '';
            currentMessage = null;

            const body = {
                departureDate: document.getElementById('departureDate').value,
                returnDate: document.getElementById('returnDate').value,
                from: document.getElementById('from').value,
                to: document.getElementById('to').value,
                passengers: parseInt(document.getElementById('passengers').value, 10),
                airline: document.getElementById('airline').value,
                cabin: document.getElementById('cabin').value,
                provider: providerSelect.value,
                model: modelSelect.value,
                sessionId: sessionId
            };

            try {
                const response = await fetch('/api/search', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify(body)
                });

                if (!response.ok) {
                    addMessage('error').textContent = 'Error: ' + await response.text();
                    return;
                }

                const reader = response.body.getReader();
                const decoder = new TextDecoder();
                let buffer = '';
                let currentEvent = '';

                while (true) {
                    const { done, value } = await reader.read();
                    if (done) break;
                    buffer += decoder.decode(value, { stream: true });

                    let idx;
                    while ((idx = buffer.indexOf('\n')) >= 0) {
                        const line = buffer.slice(0, idx);
                        buffer = buffer.slice(idx + 1);
                        if (line.startsWith('event: ')) {
                            currentEvent = line.slice(7).trim();
                        } else if (line.startsWith('data: ')) {
                            try {
                                handleEvent(currentEvent, JSON.parse(line.slice(6)));
                            } catch (e) {
                                // Ignore parse errors for incomplete chunks
                            }
                        }
                    }
                }
            } catch (error) {
                addMessage('error').textContent = 'Error: ' + error.message;
            } finally {
                runButton.disabled = false;
            }
        }

        runButton.addEventListener('click', runSearch);
        loadProviders();
    </script>
</body>
</html>`
